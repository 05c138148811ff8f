package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/color"
	"github.com/wangjh9712/fullbr115/constant"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

// Notify prints an update banner when a newer release exists. Disabled
// from config, and silent whenever the lookup fails.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a newer version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	comp, err := Compare(latest, constant.Version)
	if err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
