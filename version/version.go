// Package version discovers application updates through the GitHub
// releases API.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"

	"github.com/wangjh9712/fullbr115/constant"
	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/util"
	"github.com/wangjh9712/fullbr115/where"
)

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, without the "v" prefix.
// Lookups are cached for two days to stay clear of the GitHub rate
// limit.
func Latest() (version string, err error) {
	ver, expired, err := latestCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := http.Get("https://api.github.com/repos/" + constant.Repository + "/releases/latest")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = latestCacher.Set(version)
	return
}
