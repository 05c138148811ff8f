package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShareSession(t *testing.T) {
	Convey("Given a share session against a recording server", t, func() {
		var bodies []map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			_ = json.Unmarshal(raw, &body)
			bodies = append(bodies, body)

			switch r.URL.Path {
			case "/p115/share/list":
				_, _ = w.Write([]byte(`{"state":true,"message":"","data":{"count":2,"list":[
					{"id":"f1","parent_id":"0","name":"Movie.2024.2160p.BluRay.ISO","size":"59055800320","is_dir":false,"pick_code":"pc1","sha1":"da39a3"},
					{"id":"d1","parent_id":"0","name":"Extras","size":0,"is_dir":true,"pick_code":"","sha1":""}
				],"share_info":{"share_title":"Movie 2024"}}}`))
			case "/p115/share/save":
				_, _ = w.Write([]byte(`{"state":true,"message":"转存任务提交成功","data":null}`))
			}
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())
		session := client.Share("https://115.com/s/swz123", "a1b2")

		Convey("When the root is listed", func() {
			entries, err := session.List("0")
			So(err, ShouldBeNil)

			Convey("Then entries and credentials are mapped", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[0].IsISO(), ShouldBeTrue)
				So(entries[0].Size.Human(), ShouldEqual, "55 GiB")
				So(entries[1].IsDir, ShouldBeTrue)
				So(entries[1].IsISO(), ShouldBeFalse)
				So(entries[1].Size.Human(), ShouldEqual, "-")

				So(bodies[0]["share_link"], ShouldEqual, "https://115.com/s/swz123")
				So(bodies[0]["cid"], ShouldEqual, "0")
				So(bodies[0]["password"], ShouldEqual, "a1b2")
			})
		})

		Convey("When an ISO is saved with a directory name", func() {
			receipt, err := session.Save([]string{"f1"}, "Movie_(2024)")
			So(err, ShouldBeNil)

			Convey("Then the acknowledgement and payload are faithful", func() {
				So(receipt.Message, ShouldEqual, "转存任务提交成功")

				body := bodies[len(bodies)-1]
				So(body["new_directory_name"], ShouldEqual, "Movie_(2024)")
				So(body["file_ids"], ShouldResemble, []any{"f1"})
			})
		})

		Convey("When a plain entry is saved", func() {
			_, err := session.Save([]string{"d1"}, "")
			So(err, ShouldBeNil)

			Convey("Then the directory name and destination are null on the wire", func() {
				body := bodies[len(bodies)-1]
				dirName, present := body["new_directory_name"]
				So(present, ShouldBeTrue)
				So(dirName, ShouldBeNil)
				So(body["to_cid"], ShouldBeNil)
			})
		})

		Convey("When the session routes saves into a directory", func() {
			session.DestCID = "2593706461875482622"
			_, err := session.Save([]string{"d1"}, "")
			So(err, ShouldBeNil)

			Convey("Then the destination travels along", func() {
				body := bodies[len(bodies)-1]
				So(body["to_cid"], ShouldEqual, "2593706461875482622")
			})
		})
	})

	Convey("Given a share the server refuses to open", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"state":false,"message":"访问码错误","data":null}`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When listing is attempted", func() {
			_, err := client.Share("https://115.com/s/swz999", "bad").List("0")

			Convey("Then the server's wording surfaces verbatim", func() {
				So(err, ShouldHaveSameTypeAs, &AppError{})
				So(err.Error(), ShouldEqual, "访问码错误")
			})
		})
	})
}

func TestOfflineAdd(t *testing.T) {
	Convey("Given a server accepting offline tasks", t, func() {
		var body map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			_, _ = w.Write([]byte(`{"state":true,"message":"离线任务添加成功","data":null}`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When magnet links are queued", func() {
			receipt, err := client.OfflineAdd([]string{"magnet:?xt=urn:btih:aa", "ed2k://|file|x|1|bb|/"}, "")
			So(err, ShouldBeNil)

			Convey("Then urls travel as a list and the ack comes back", func() {
				So(body["urls"], ShouldResemble, []any{"magnet:?xt=urn:btih:aa", "ed2k://|file|x|1|bb|/"})
				So(body["to_cid"], ShouldBeNil)
				So(receipt.Message, ShouldEqual, "离线任务添加成功")
			})
		})

		Convey("When a download directory is picked", func() {
			_, err := client.OfflineAdd([]string{"magnet:?xt=urn:btih:aa"}, "777")
			So(err, ShouldBeNil)
			So(body["to_cid"], ShouldEqual, "777")
		})
	})
}

func TestDriveList(t *testing.T) {
	Convey("Given a personal drive listing", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"state":true,"message":"","data":{
				"count": 2,
				"path": [
					{"name": "根目录", "cid": 0},
					{"name": "电影", "cid": "2593706461875482622"}
				],
				"list": [
					{"id":"d9","parent_id":"0","name":"2024","size":"0","is_dir":true,"pick_code":"","time":"2024-12-01 10:30"},
					{"id":"f7","parent_id":"d9","name":"movie.mkv","size":"4831838208","is_dir":false,"pick_code":"pc7","time":"2024-12-02 09:00"}
				]
			}}`))
		}))
		Reset(server.Close)

		client := NewWith(server.URL, server.Client(), testStore())

		Convey("When a directory is listed", func() {
			listing, err := client.DriveList("2593706461875482622", 100, 0)
			So(err, ShouldBeNil)

			Convey("Then entries, ids and the breadcrumb are mapped", func() {
				So(listing.Count, ShouldEqual, 2)
				So(listing.List, ShouldHaveLength, 2)
				So(listing.List[1].Size.Human(), ShouldEqual, "4.5 GiB")
				So(listing.Path[0].CID.String(), ShouldEqual, "0")
				So(listing.Path[1].CID.String(), ShouldEqual, "2593706461875482622")
				So(listing.Breadcrumb(), ShouldEqual, "根目录 > 电影")
			})
		})
	})
}
