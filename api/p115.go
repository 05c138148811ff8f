package api

import (
	"encoding/json"
	"strings"

	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/media"
)

// p115Response is the envelope every 115 endpoint replies with. When state
// is false the message explains the refusal and data is absent; on success
// the message acknowledges the action and data carries the payload.
type p115Response struct {
	State   bool            `json:"state"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// p115 posts to a 115 endpoint and checks the envelope. A state=false
// reply becomes an AppError carrying the server's message untouched.
func (c *Client) p115(path string, payload any) (*p115Response, error) {
	var envelope p115Response
	if err := c.post(path, payload, &envelope); err != nil {
		return nil, err
	}

	if !envelope.State {
		log.Errorf("api: %s refused: %s", path, envelope.Message)
		return nil, &AppError{Message: envelope.Message}
	}

	return &envelope, nil
}

// ShareFile is one entry of a share or drive listing.
type ShareFile struct {
	ID       string          `json:"id"`
	ParentID string          `json:"parent_id"`
	Name     string          `json:"name"`
	Size     media.ByteCount `json:"size"`
	IsDir    bool            `json:"is_dir"`
	PickCode string          `json:"pick_code"`
	SHA1     string          `json:"sha1"`

	// Time is only present in drive listings.
	Time string `json:"time,omitempty"`
}

func (f *ShareFile) String() string {
	return f.Name
}

// IsISO reports whether the entry is a disc image. The name alone decides,
// whatever the directory flag says.
func (f *ShareFile) IsISO() bool {
	return strings.HasSuffix(strings.ToLower(f.Name), ".iso")
}

// Receipt is the acknowledgement of a mutating call.
type Receipt struct {
	Message string `json:"message"`
}

type shareListData struct {
	Count     int             `json:"count"`
	List      []ShareFile     `json:"list"`
	ShareInfo json.RawMessage `json:"share_info"`
}

// ShareSession scopes listing and saving to one share link. The password
// travels with every request because the server keeps no session.
type ShareSession struct {
	client   *Client
	link     string
	password string

	// DestCID routes saves into this drive directory. Empty leaves the
	// destination to the server's configured save path.
	DestCID string
}

// Share opens a session on a share link. An empty password is fine for
// public shares.
func (c *Client) Share(link, password string) *ShareSession {
	return &ShareSession{
		client:   c,
		link:     link,
		password: password,
	}
}

// Link returns the share link the session is bound to.
func (s *ShareSession) Link() string {
	return s.link
}

// List fetches the entries under one directory of the share. cid "0" is
// the share root.
func (s *ShareSession) List(cid string) ([]ShareFile, error) {
	log.Infof("api: listing share directory %s", cid)

	resp, err := s.client.p115("/p115/share/list", map[string]any{
		"share_link": s.link,
		"cid":        cid,
		"password":   s.password,
	})
	if err != nil {
		return nil, err
	}

	var listing shareListData
	if err = json.Unmarshal(resp.Data, &listing); err != nil {
		return nil, &DecodeError{Path: "/p115/share/list", Err: err}
	}

	return listing.List, nil
}

// Save asks the server to copy the given entries into the user's drive.
// A non-empty newDirName wraps them in a freshly created directory, an
// empty one keeps the default destination untouched.
func (s *ShareSession) Save(fileIDs []string, newDirName string) (*Receipt, error) {
	log.Infof("api: saving %d share entries", len(fileIDs))

	resp, err := s.client.p115("/p115/share/save", map[string]any{
		"share_link":         s.link,
		"file_ids":           fileIDs,
		"password":           s.password,
		"to_cid":             orNull(s.DestCID),
		"new_directory_name": orNull(newDirName),
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{Message: resp.Message}, nil
}

// orNull keeps optional payload fields explicit: absent values go out as
// JSON null instead of empty strings the server would take literally.
func orNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// OfflineAdd queues magnet or ed2k links for offline download on the
// user's drive. An empty destCID leaves the download directory to the
// server's configured default.
func (c *Client) OfflineAdd(urls []string, destCID string) (*Receipt, error) {
	log.Infof("api: queueing %d offline downloads", len(urls))

	resp, err := c.p115("/p115/offline/add", map[string]any{
		"urls":   urls,
		"to_cid": orNull(destCID),
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{Message: resp.Message}, nil
}

// Crumb is one step of a drive listing's breadcrumb.
type Crumb struct {
	Name string `json:"name"`
	CID  flexID `json:"cid"`
}

// flexID tolerates the drive API sending directory ids as numbers in some
// listings and strings in others.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*id = flexID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*id = flexID(num.String())
	return nil
}

func (id flexID) String() string {
	return string(id)
}

// DriveListing is one page of the user's own drive.
type DriveListing struct {
	Count int         `json:"count"`
	List  []ShareFile `json:"list"`
	Path  []Crumb     `json:"path"`
}

// Breadcrumb renders the listing's location, e.g. "根目录 > 电影 > 2024".
func (l *DriveListing) Breadcrumb() string {
	parts := make([]string, 0, len(l.Path))
	for _, crumb := range l.Path {
		if crumb.Name == "" {
			continue
		}
		parts = append(parts, crumb.Name)
	}
	return strings.Join(parts, " > ")
}

// DriveList fetches one page of the user's drive under the directory cid.
func (c *Client) DriveList(cid string, limit, offset int) (*DriveListing, error) {
	log.Infof("api: listing drive directory %s", cid)

	resp, err := c.p115("/p115/files/list", map[string]any{
		"cid":    cid,
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, err
	}

	listing := &DriveListing{}
	if err = json.Unmarshal(resp.Data, listing); err != nil {
		return nil, &DecodeError{Path: "/p115/files/list", Err: err}
	}

	return listing, nil
}
