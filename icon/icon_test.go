package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		Convey("Every icon renders for every variant", func() {
			for name := range icons {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(name), ShouldNotBeEmpty)
				}
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Disc), ShouldBeEmpty)
		})
	})
}
