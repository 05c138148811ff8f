package share

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/media"
)

type fakeService struct {
	mu        sync.Mutex
	listings  map[string][]api.ShareFile
	failing   map[string]error
	listCalls []string

	savedIDs     []string
	savedDirName string
	saveErr      error
	saveStarted  chan struct{}
	saveRelease  chan struct{}
}

func (f *fakeService) List(cid string) ([]api.ShareFile, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, cid)
	f.mu.Unlock()

	if err := f.failing[cid]; err != nil {
		return nil, err
	}
	return f.listings[cid], nil
}

func (f *fakeService) Save(fileIDs []string, newDirName string) (*api.Receipt, error) {
	if f.saveStarted != nil {
		f.saveStarted <- struct{}{}
		<-f.saveRelease
	}

	f.mu.Lock()
	f.savedIDs = fileIDs
	f.savedDirName = newDirName
	f.mu.Unlock()

	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &api.Receipt{Message: "转存任务提交成功"}, nil
}

func (f *fakeService) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.listCalls...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) SaveSubmitted(node *Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "submitted "+node.Name)
}

func (r *recordingNotifier) SaveResolved(_ *Node, receipt *api.Receipt, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.events = append(r.events, "failed "+err.Error())
		return
	}
	r.events = append(r.events, "resolved "+receipt.Message)
}

func dir(id, name string) api.ShareFile {
	return api.ShareFile{ID: id, ParentID: "0", Name: name, IsDir: true}
}

func file(id, name string, size int64) api.ShareFile {
	return api.ShareFile{ID: id, ParentID: "0", Name: name, Size: media.ByteCount(size)}
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Name)
	}
	return out
}

func TestLoad(t *testing.T) {
	Convey("Given a share wrapped in a single container folder", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0":  {dir("w1", "Movie.2024.2160p")},
			"w1": {file("f1", "Movie.2024.iso", 59055800320), dir("d2", "Extras")},
		}}
		tree := NewTree(svc, nil)

		Convey("When the tree loads", func() {
			So(tree.Load(), ShouldBeNil)

			Convey("Then the wrapper is elided", func() {
				So(names(tree.Entries()), ShouldResemble, []string{"Movie.2024.iso", "Extras"})
				So(svc.calls(), ShouldResemble, []string{"0", "w1"})
			})
		})

		Convey("When the inner listing fails", func() {
			svc.failing = map[string]error{"w1": errors.New("share expired")}
			So(tree.Load(), ShouldBeNil)

			Convey("Then the wrapper itself stays browsable", func() {
				So(names(tree.Entries()), ShouldResemble, []string{"Movie.2024.2160p"})
			})
		})
	})

	Convey("Given a share with several top-level entries", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0": {dir("d1", "Season 1"), dir("d2", "Season 2")},
		}}
		tree := NewTree(svc, nil)

		Convey("When the tree loads", func() {
			So(tree.Load(), ShouldBeNil)

			Convey("Then nothing is flattened", func() {
				So(names(tree.Entries()), ShouldResemble, []string{"Season 1", "Season 2"})
				So(svc.calls(), ShouldResemble, []string{"0"})
			})
		})
	})

	Convey("Given a share whose only entry is a file", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0": {file("f1", "movie.mkv", 4831838208)},
		}}
		tree := NewTree(svc, nil)

		So(tree.Load(), ShouldBeNil)
		So(names(tree.Entries()), ShouldResemble, []string{"movie.mkv"})
		So(svc.calls(), ShouldResemble, []string{"0"})
	})

	Convey("Given a share whose only entry is a disc image marked as a directory", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0": {dir("i1", "Movie.2024.ISO")},
		}}
		tree := NewTree(svc, nil)

		So(tree.Load(), ShouldBeNil)

		Convey("Then it is presented as a savable unit, not opened", func() {
			So(names(tree.Entries()), ShouldResemble, []string{"Movie.2024.ISO"})
			So(svc.calls(), ShouldResemble, []string{"0"})
		})
	})

	Convey("Given a share the server refuses", t, func() {
		svc := &fakeService{failing: map[string]error{"0": &api.AppError{Message: "访问码错误"}}}
		tree := NewTree(svc, nil)

		err := tree.Load()
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "访问码错误")
		So(tree.Entries(), ShouldBeEmpty)
	})
}

func TestExpand(t *testing.T) {
	Convey("Given a loaded two directory share", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0":  {dir("d1", "Season 1"), file("i1", "bonus.iso", 1024)},
			"d1": {file("e1", "E01.mkv", 1024), file("e2", "E02.mkv", 1024)},
		}}
		tree := NewTree(svc, nil)
		So(tree.Load(), ShouldBeNil)
		season := tree.Entries()[0]
		iso := tree.Entries()[1]

		Convey("When a directory expands", func() {
			So(tree.Expand(season), ShouldBeNil)

			Convey("Then its children are fetched once", func() {
				So(season.Expanded(), ShouldBeTrue)
				So(names(season.Children()), ShouldResemble, []string{"E01.mkv", "E02.mkv"})
				So(svc.calls(), ShouldResemble, []string{"0", "d1"})
			})

			Convey("Then expanding again is free", func() {
				So(tree.Expand(season), ShouldBeNil)
				So(svc.calls(), ShouldResemble, []string{"0", "d1"})
			})

			Convey("Then collapse keeps the children for re-expansion", func() {
				tree.Collapse(season)
				So(season.Expanded(), ShouldBeFalse)
				So(season.Children(), ShouldHaveLength, 2)

				So(tree.Expand(season), ShouldBeNil)
				So(season.Expanded(), ShouldBeTrue)
				So(svc.calls(), ShouldResemble, []string{"0", "d1"})
			})
		})

		Convey("When a disc image is expanded", func() {
			So(tree.Expand(iso), ShouldBeNil)

			Convey("Then nothing happens at all", func() {
				So(iso.Expanded(), ShouldBeFalse)
				So(iso.Loading(), ShouldBeFalse)
				So(svc.calls(), ShouldResemble, []string{"0"})
			})
		})

		Convey("When the listing fails", func() {
			svc.failing = map[string]error{"d1": errors.New("timeout")}

			err := tree.Expand(season)
			So(err, ShouldNotBeNil)

			Convey("Then the node reverts to collapsed", func() {
				So(season.Expanded(), ShouldBeFalse)
				So(season.Loading(), ShouldBeFalse)
				So(season.Children(), ShouldBeEmpty)
			})

			Convey("Then a later retry fetches for real", func() {
				svc.failing = nil
				So(tree.Expand(season), ShouldBeNil)
				So(names(season.Children()), ShouldResemble, []string{"E01.mkv", "E02.mkv"})
			})
		})
	})
}

func TestWalk(t *testing.T) {
	Convey("Given a loaded share expanded two levels deep", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0":  {dir("d1", "Season 1"), file("n1", "notes.txt", 10)},
			"d1": {file("e1", "E01.mkv", 1024)},
		}}
		tree := NewTree(svc, nil)
		So(tree.Load(), ShouldBeNil)
		So(tree.ExpandTo(2), ShouldBeNil)

		Convey("When the tree is walked", func() {
			var visited []string
			tree.Walk(func(node *Node, depth int) {
				visited = append(visited, fmt.Sprintf("%s@%d", node.Name, depth))
			})

			Convey("Then nodes come in document order with depths", func() {
				So(visited, ShouldResemble, []string{"Season 1@1", "E01.mkv@2", "notes.txt@1"})
			})
		})

		Convey("When a directory is collapsed before the walk", func() {
			tree.Collapse(tree.Entries()[0])

			var visited []string
			tree.Walk(func(node *Node, depth int) {
				visited = append(visited, node.Name)
			})

			Convey("Then its children stay hidden", func() {
				So(visited, ShouldResemble, []string{"Season 1", "notes.txt"})
			})
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Given a loaded share with an image and a directory", t, func() {
		svc := &fakeService{listings: map[string][]api.ShareFile{
			"0": {file("f1", "Movie.2024.iso", 59055800320), dir("d2", "Extras")},
		}}
		notifier := &recordingNotifier{}
		tree := NewTree(svc, notifier)
		So(tree.Load(), ShouldBeNil)
		iso := tree.Entries()[0]
		extras := tree.Entries()[1]

		Convey("When the disc image is saved with a template", func() {
			receipt, err := tree.Save(iso, "{name}")
			So(err, ShouldBeNil)

			Convey("Then it gets its own destination directory", func() {
				So(svc.savedIDs, ShouldResemble, []string{"f1"})
				So(svc.savedDirName, ShouldEqual, "Movie.2024")
				So(receipt.Message, ShouldEqual, "转存任务提交成功")
			})

			Convey("Then the notifier heard both phases in order", func() {
				So(notifier.events, ShouldResemble, []string{
					"submitted Movie.2024.iso",
					"resolved 转存任务提交成功",
				})
			})
		})

		Convey("When a plain directory is saved", func() {
			_, err := tree.Save(extras, "{name}")
			So(err, ShouldBeNil)

			Convey("Then no destination directory is named", func() {
				So(svc.savedDirName, ShouldBeEmpty)
			})
		})

		Convey("When the server refuses the save", func() {
			svc.saveErr = &api.AppError{Message: "转存失败: 空间不足"}

			_, err := tree.Save(iso, "")
			So(err, ShouldEqual, svc.saveErr)

			Convey("Then the refusal reaches the notifier verbatim", func() {
				So(notifier.events, ShouldResemble, []string{
					"submitted Movie.2024.iso",
					"failed 转存失败: 空间不足",
				})
				So(iso.Saving(), ShouldBeFalse)
			})
		})

		Convey("When a second save races the first", func() {
			svc.saveStarted = make(chan struct{}, 1)
			svc.saveRelease = make(chan struct{})

			var (
				wg       sync.WaitGroup
				firstErr error
			)
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, firstErr = tree.Save(iso, "")
			}()

			<-svc.saveStarted
			_, second := tree.Save(iso, "")
			close(svc.saveRelease)
			wg.Wait()

			Convey("Then only one save went out", func() {
				So(second, ShouldEqual, ErrSaveInFlight)
				So(firstErr, ShouldBeNil)
				So(iso.Saving(), ShouldBeFalse)
			})
		})
	})
}
