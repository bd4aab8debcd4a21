package completion

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// fruitCompleter is a stand-in for a real data source.
func fruitCompleter() Completer {
	return CompleterFunc(func(req Request) []Candidate {
		var out []Candidate
		for _, f := range []string{"apple", "apricot", "banana"} {
			if strings.HasPrefix(f, req.Word) {
				out = append(out, Candidate{Value: f, Tooltip: "fruit " + f})
			}
		}
		return out
	})
}

func newTestCommand(t *testing.T) (*cobra.Command, *cobra.Command) {
	t.Helper()
	root := &cobra.Command{Use: "app"}
	sub := &cobra.Command{
		Use: "eat",
		RunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	sub.Flags().String("fruit", "", "a fruit")
	sub.Flags().String("size", "", "portion size")
	root.AddCommand(sub)
	return root, sub
}

func runComplete(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{cobra.ShellCompRequestCmd}, args...))
	if err := root.Execute(); err != nil {
		t.Fatalf("completion request failed: %v", err)
	}
	return out.String()
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry(nil)

	if _, ok := r.Get("fruit"); ok {
		t.Fatal("empty registry should not have a factory")
	}

	r.Register("fruit", fruitCompleter)
	r.Register("size", Static("small", "large"))

	if _, ok := r.Get("fruit"); !ok {
		t.Error("expected fruit factory to be registered")
	}

	params := r.Params()
	if len(params) != 2 || params[0] != "fruit" || params[1] != "size" {
		t.Errorf("Params() = %v, want [fruit size]", params)
	}
}

func TestRegistryComplete(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("fruit", fruitCompleter)

	got := r.Complete("fruit", Request{Word: "ap"})
	if len(got) != 2 {
		t.Fatalf("Complete() returned %d candidates, want 2", len(got))
	}
	if got[0].Value != "apple" || got[1].Value != "apricot" {
		t.Errorf("Complete() = %+v, want apple then apricot", got)
	}

	if got := r.Complete("missing", Request{Word: "ap"}); got != nil {
		t.Errorf("Complete() for unknown param = %+v, want nil", got)
	}
}

func TestRegistryCompleteSetsParameter(t *testing.T) {
	r := NewRegistry(nil)
	var seen string
	r.Register("colour", func() Completer {
		return CompleterFunc(func(req Request) []Candidate {
			seen = req.Parameter
			return nil
		})
	})

	r.Complete("colour", Request{Parameter: "ignored"})
	if seen != "colour" {
		t.Errorf("Parameter = %q, want colour", seen)
	}
}

func TestRegistryCompleteRecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &logs,
		Level:  hclog.Warn,
	})

	r := NewRegistry(logger)
	r.Register("broken", func() Completer {
		return CompleterFunc(func(Request) []Candidate {
			panic("palette data corrupt")
		})
	})
	r.Register("nil", func() Completer { return nil })

	if got := r.Complete("broken", Request{Word: "x"}); got != nil {
		t.Errorf("Complete() after panic = %+v, want nil", got)
	}
	if !strings.Contains(logs.String(), "palette data corrupt") {
		t.Errorf("expected panic to be logged, got %q", logs.String())
	}

	if got := r.Complete("nil", Request{}); got != nil {
		t.Errorf("Complete() with nil completer = %+v, want nil", got)
	}
}

func TestRegistryFactoryCalledPerRequest(t *testing.T) {
	r := NewRegistry(nil)
	calls := 0
	r.Register("fruit", func() Completer {
		calls++
		return fruitCompleter()
	})

	r.Complete("fruit", Request{})
	r.Complete("fruit", Request{})
	if calls != 2 {
		t.Errorf("factory called %d times, want 2", calls)
	}
}

func TestBindFlag(t *testing.T) {
	root, sub := newTestCommand(t)
	r := NewRegistry(nil)
	r.Register("fruit", fruitCompleter)

	if err := r.BindFlag(sub, "fruit"); err != nil {
		t.Fatalf("BindFlag() error: %v", err)
	}

	out := runComplete(t, root, "eat", "--fruit", "ap")
	if !strings.Contains(out, "apple\tfruit apple\n") {
		t.Errorf("expected apple candidate in output, got %q", out)
	}
	if !strings.Contains(out, "apricot\tfruit apricot\n") {
		t.Errorf("expected apricot candidate in output, got %q", out)
	}
	if strings.Contains(out, "banana") {
		t.Errorf("unexpected banana candidate in output %q", out)
	}

	directive := cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
	if !strings.Contains(out, ":"+strconv.Itoa(int(directive))) {
		t.Errorf("expected directive %d in output %q", directive, out)
	}
}

func TestBindFlagErrors(t *testing.T) {
	_, sub := newTestCommand(t)
	r := NewRegistry(nil)

	if err := r.BindFlag(sub, "fruit"); err == nil {
		t.Error("expected error binding unregistered completer")
	}

	r.Register("colour", fruitCompleter)
	if err := r.BindFlag(sub, "colour"); err == nil {
		t.Error("expected error binding to a flag the command does not define")
	}
}

func TestBindArgsPassesBoundArguments(t *testing.T) {
	root, sub := newTestCommand(t)
	r := NewRegistry(nil)

	var got Request
	r.Register("fruit", func() Completer {
		return CompleterFunc(func(req Request) []Candidate {
			got = req
			return []Candidate{{Value: "kiwi"}}
		})
	})
	if err := r.BindArgs(sub, "fruit"); err != nil {
		t.Fatalf("BindArgs() error: %v", err)
	}

	out := runComplete(t, root, "eat", "--size", "large", "pear", "ki")
	if !strings.Contains(out, "kiwi\n") {
		t.Errorf("expected kiwi candidate, got %q", out)
	}

	if got.Command != "app eat" {
		t.Errorf("Command = %q, want %q", got.Command, "app eat")
	}
	if got.Parameter != "fruit" {
		t.Errorf("Parameter = %q, want fruit", got.Parameter)
	}
	if got.Word != "ki" {
		t.Errorf("Word = %q, want ki", got.Word)
	}
	if got.Bound["size"] != "large" {
		t.Errorf("Bound[size] = %q, want large", got.Bound["size"])
	}
	if got.Bound[ArgsKey] != "pear" {
		t.Errorf("Bound[args] = %q, want pear", got.Bound[ArgsKey])
	}
}

func TestBindArgsUnregistered(t *testing.T) {
	_, sub := newTestCommand(t)
	if err := NewRegistry(nil).BindArgs(sub, "fruit"); err == nil {
		t.Error("expected error binding unregistered completer")
	}
}
