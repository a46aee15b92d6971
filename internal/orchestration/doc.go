// Package orchestration drives one armcalc run: it validates the request,
// times both checker variants with the benchmark harness, derives the
// verdict and the winner, appends the result to the session history, runs
// the reference batch and hands everything to a ResultPresenter. Progress
// and presentation are reached through interfaces so the same flow serves
// the CLI, the REPL, the TUI and the HTTP server.
package orchestration
