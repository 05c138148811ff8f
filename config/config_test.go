package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/filesystem"
	"github.com/wangjh9712/fullbr115/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error when no file exists", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should expose the server URL default", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ServerURL), ShouldEqual, "http://localhost:8000")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace(key.ResourcesRequireZh), ShouldEqual, "resources_require_zh")
		})

		Convey("Env name should carry the application prefix", func() {
			f := Default[key.ServerURL]
			So(f.Env(), ShouldEqual, "FULLBR115_SERVER_URL")
		})
	})
}
