// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command readmore prints a text file collapsed to a number of lines
// of the terminal, followed by a read-more affordance.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/readmore/base/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
