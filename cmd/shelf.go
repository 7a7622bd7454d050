/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Paintersrp/shelf/internal/logger"
	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/root"
)

func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := root.ParseOptions(args)

	// zap debug is -1, info 0
	level := int8(0)
	if opts.Verbose {
		level = -1
	}
	log := logger.Get(level)
	defer logger.Sync()

	s, err := state.NewState(opts.Library, *log)
	if err != nil {
		log.Error(err, "failed to open library")
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer s.Close()

	rootCmd, err := root.NewCmdRoot(s, &opts)
	if err != nil {
		log.Error(err, "failed to build commands")
		return 1
	}
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs(args)

	ctx := logger.WithLogger(context.Background(), log)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
