package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/bf/vars"
)

// Executor maps command line words to commands. Each command consumes as
// many following words as its function has parameters.
type Executor struct {
	commands map[string]*Command
	fallback *Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Default sets the command that receives arguments not matching any defined
// name, such as positional file paths. Names starting with '-' never fall back.
func (p *Executor) Default(command *Command) {
	if !command.Func.IsValid() || command.Func.Type().NumIn() == 0 {
		panic(fmt.Errorf("default command must take an argument"))
	}
	p.fallback = command
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, rest, err := p.resolve(commands, name, args)
		if err != nil {
			return err
		}
		args = rest

		if command.Func.IsValid() {
			args, err = call(command, args)
			if err != nil {
				return err
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// resolve finds the command for name. "-name=value" is split into "-name"
// followed by "value".
func (p *Executor) resolve(commands map[string]*Command, name string, args []string) (*Command, []string, error) {
	if command, ok := commands[name]; ok {
		return command, args, nil
	}
	if strings.HasPrefix(name, "-") {
		if flag, value, ok := strings.Cut(name, "="); ok {
			if command, ok := commands[flag]; ok {
				return command, append([]string{value}, args...), nil
			}
		}
		return nil, nil, fmt.Errorf("unknown command: %s", name)
	}
	if p.fallback == nil {
		return nil, nil, fmt.Errorf("unknown command: %s", name)
	}
	return p.fallback, append([]string{name}, args...), nil
}

// call invokes the command with arguments taken from the front of args and
// returns the remaining words.
func call(command *Command, args []string) ([]string, error) {
	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func getArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional
			return reflect.New(t.Elem()), nil
		}
		elem, err := getArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}
	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting %v argument, got nothing", t)
	}

	str := args[0]
	ret := reflect.New(t).Elem()
	var err error
	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var v int64
		v, err = strconv.ParseInt(str, 10, t.Bits())
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var v uint64
		v, err = strconv.ParseUint(str, 10, t.Bits())
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		var v float64
		v, err = strconv.ParseFloat(str, t.Bits())
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}

	if err != nil {
		return reflect.Value{}, fmt.Errorf("convert %s to %v: %w", str, t, err)
	}
	return ret, nil
}
