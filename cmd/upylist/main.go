// upylist is an interactive shell for poking list objects on an emulated
// MicroPython heap. It exists to exercise the binding end to end: allocate,
// append, mutate through a slice view, and bounce a list through the generic
// handle type and back.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/grdddj/trezor-firmware/micropython"
)

const (
	appName     = "upylist"
	historyFile = ".upylist_history"
	prompt      = "mpy> "
)

var banner = fmt.Sprintf("%s — MicroPython list binding shell\nCtrl+D exits. Type :help for commands.", appName)

const helpText = `commands:
  new [cap]        allocate an empty list (with reserved capacity)
  lit v1 v2 ...    allocate a list from literals (int, "str", true, none)
  append v         append a value to the current list
  set i v          replace element i through a mutable slice view
  len              print the current list's length
  show             print the current list's elements
  obj              convert to a generic handle, gate it back, print
  heap             print heap usage in cells
  :help            this text
  :quit            exit
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

// parseLiteral turns a shell token into an interpreter object.
func parseLiteral(tok string) (micropython.Obj, error) {
	switch {
	case tok == "none":
		return micropython.None, nil
	case tok == "true" || tok == "false":
		return micropython.Bool(tok == "true"), nil
	case len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`):
		return micropython.Str(tok[1 : len(tok)-1]), nil
	default:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return micropython.Obj{}, fmt.Errorf("cannot parse %q as a value", tok)
		}
		return micropython.Int(n), nil
	}
}

func showSlice(objs []micropython.Obj) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type session struct {
	rt   *micropython.Runtime
	list micropython.Gc[micropython.List]
}

func (s *session) current() (*micropython.List, error) {
	l := s.list.Ref()
	if l == nil {
		return nil, fmt.Errorf("no list yet; use new or lit first")
	}
	return l, nil
}

func (s *session) dispatch(fields []string) error {
	switch fields[0] {
	case "new":
		capacity := 0
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("bad capacity %q", fields[1])
			}
			capacity = n
		}
		gcl, err := s.rt.ListWithCapacity(capacity)
		if err != nil {
			return err
		}
		s.list = gcl
		fmt.Println(blue(s.list.Ref().AsObj().String()))
		return nil

	case "lit":
		values := make([]micropython.Obj, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			o, err := parseLiteral(tok)
			if err != nil {
				return err
			}
			values = append(values, o)
		}
		gcl, err := s.rt.AllocList(values)
		if err != nil {
			return err
		}
		s.list = gcl
		fmt.Println(blue(s.list.Ref().AsObj().String()))
		return nil

	case "append":
		if len(fields) != 2 {
			return fmt.Errorf("usage: append v")
		}
		l, err := s.current()
		if err != nil {
			return err
		}
		o, err := parseLiteral(fields[1])
		if err != nil {
			return err
		}
		return l.Append(o)

	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set i v")
		}
		l, err := s.current()
		if err != nil {
			return err
		}
		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad index %q", fields[1])
		}
		o, err := parseLiteral(fields[2])
		if err != nil {
			return err
		}
		slice := l.AsMutSlice()
		if i < 0 || i >= len(slice) {
			return fmt.Errorf("index %d out of range 0..%d", i, len(slice)-1)
		}
		slice[i] = o
		return nil

	case "len":
		l, err := s.current()
		if err != nil {
			return err
		}
		fmt.Println(blue(strconv.Itoa(l.Len())))
		return nil

	case "show":
		l, err := s.current()
		if err != nil {
			return err
		}
		fmt.Println(blue(showSlice(l.AsSlice())))
		return nil

	case "obj":
		l, err := s.current()
		if err != nil {
			return err
		}
		obj := l.AsObj()
		back, err := micropython.ListFromObj(obj)
		if err != nil {
			return err
		}
		fmt.Println(blue(obj.String() + " -> " + showSlice(back.Ref().AsSlice())))
		return nil

	case "heap":
		fmt.Println(blue(fmt.Sprintf("%d of %d cells", s.rt.HeapUsed(), s.rt.HeapCells())))
		return nil

	default:
		return fmt.Errorf("unknown command %q; type :help", fields[0])
	}
}

func main() {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// heap budget comes from MPY_HEAP_CELLS when set
	s := &session{rt: micropython.NewRuntimeFromEnv()}

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			fmt.Println()
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch line {
		case ":quit":
			return
		case ":help":
			fmt.Print(helpText)
			continue
		}

		if err := s.dispatch(strings.Fields(line)); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}
