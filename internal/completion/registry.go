package completion

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Registry maps parameter identifiers to completer factories.
// It is populated at startup and then bound onto cobra's completion hooks.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    hclog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger.Named("completion"),
	}
}

// Register associates a factory with a parameter, replacing any previous one.
func (r *Registry) Register(param string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[param] = factory
}

// Get retrieves the factory for a parameter.
func (r *Registry) Get(param string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[param]
	return f, ok
}

// Params returns the registered parameter identifiers in sorted order.
func (r *Registry) Params() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	params := lo.Keys(r.factories)
	slices.Sort(params)
	return params
}

// Complete creates a completer for the parameter and runs it.
// Unknown parameters and completer panics both yield no candidates.
func (r *Registry) Complete(param string, req Request) (candidates []Candidate) {
	factory, ok := r.Get(param)
	if !ok {
		r.logger.Debug("no completer registered", "param", param)
		return nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("completer failed", "param", param, "word", req.Word, "error", fmt.Sprint(rec))
			candidates = nil
		}
	}()

	req.Parameter = param
	completer := factory()
	if completer == nil {
		r.logger.Warn("completer factory returned nil", "param", param)
		return nil
	}

	candidates = completer.Complete(req)
	r.logger.Trace("completed", "param", param, "word", req.Word, "candidates", len(candidates))
	return candidates
}

// BindFlag installs the registered completer for flag as cobra's completion
// function for that flag on cmd.
func (r *Registry) BindFlag(cmd *cobra.Command, flag string) error {
	if _, ok := r.Get(flag); !ok {
		return fmt.Errorf("no completer registered for flag %q", flag)
	}
	if err := cmd.RegisterFlagCompletionFunc(flag, r.cobraFunc(flag)); err != nil {
		return fmt.Errorf("failed to bind completer for flag %q: %w", flag, err)
	}
	return nil
}

// BindArgs installs the completer registered under param as cmd's
// positional argument completion.
func (r *Registry) BindArgs(cmd *cobra.Command, param string) error {
	if _, ok := r.Get(param); !ok {
		return fmt.Errorf("no completer registered for %q", param)
	}
	cmd.ValidArgsFunction = r.cobraFunc(param)
	return nil
}

// cobraFunc adapts a registered completer to cobra's completion signature.
func (r *Registry) cobraFunc(param string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		req := Request{
			Command: cmd.CommandPath(),
			Word:    toComplete,
			Bound:   boundArgs(cmd, args),
		}

		candidates := r.Complete(param, req)
		out := make([]string, 0, len(candidates))
		for _, c := range candidates {
			out = append(out, c.shellForm())
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
	}
}

// boundArgs collects the flags already set on the command line along with
// any positional arguments.
func boundArgs(cmd *cobra.Command, args []string) map[string]string {
	bound := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		bound[f.Name] = f.Value.String()
	})
	if len(args) > 0 {
		bound[ArgsKey] = strings.Join(args, " ")
	}
	return bound
}
