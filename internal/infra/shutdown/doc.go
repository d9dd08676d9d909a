// Package shutdown coordinates orderly exit of long-running commands.
//
// A Handler waits for SIGINT/SIGTERM (or for its context to end), then runs
// the registered hooks in reverse order under a timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown("watcher", func(context.Context) error { return w.Stop() })
//	err := h.Wait(ctx)
package shutdown
