// Package main is the entry point for the fullbr115 application.
package main

import (
	"github.com/samber/lo"

	"github.com/wangjh9712/fullbr115/cmd"
	"github.com/wangjh9712/fullbr115/config"
	"github.com/wangjh9712/fullbr115/internal/cache"
	"github.com/wangjh9712/fullbr115/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Sweep expired cache entries in the background while the command runs.
	cache.New().CollectGarbage()

	cmd.Execute()
}
