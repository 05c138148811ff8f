package media

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wangjh9712/fullbr115/util"
)

var sizePattern = regexp.MustCompile(`(?P<value>[\d.]+)\s*(?P<unit>[a-zA-Z]+)`)

var sizeUnits = map[string]float64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
	"PB": 1 << 50,
}

// ParseSize converts a display size like "54.2GB" into bytes. Unparseable
// input yields 0. An unrecognized unit keeps the numeric part untouched so
// ordering still has something to work with.
func ParseSize(text string) float64 {
	groups := util.ReGroups(sizePattern, strings.TrimSpace(text))

	value, err := strconv.ParseFloat(groups["value"], 64)
	if err != nil {
		return 0
	}

	mult, ok := sizeUnits[strings.ToUpper(groups["unit"])]
	if !ok {
		mult = 1
	}
	return value * mult
}
