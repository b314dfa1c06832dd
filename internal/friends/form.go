package friends

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator produces candidate ids for new friends.
type IDGenerator func() ID

// NewUUID is the default IDGenerator.
func NewUUID() ID {
	return ID(uuid.NewString())
}

// maxIDAttempts bounds regeneration when a generator keeps returning taken ids.
const maxIDAttempts = 16

// Form is the editable state behind the add-friend form.
// It lives only while the form is shown; a hidden form is discarded.
type Form struct {
	Name  string
	Image string

	avatarBase string
	newID      IDGenerator
	taken      func(ID) bool
}

// NewForm creates an empty form. avatarBase defaults to DefaultAvatarBase when empty;
// taken reports whether an id is already used and may be nil.
func NewForm(avatarBase string, newID IDGenerator, taken func(ID) bool) *Form {
	if avatarBase == "" {
		avatarBase = DefaultAvatarBase
	}
	if newID == nil {
		newID = NewUUID
	}
	return &Form{
		Image:      avatarBase,
		avatarBase: avatarBase,
		newID:      newID,
		taken:      taken,
	}
}

// AvatarBase returns the placeholder the image field resets to.
func (f *Form) AvatarBase() string {
	return f.avatarBase
}

// Submit builds a new friend from the form. It returns false and leaves the form
// untouched when the name or image is empty, or when no free id could be generated.
// On success the form is reset.
func (f *Form) Submit() (Friend, bool) {
	name := strings.TrimSpace(f.Name)
	image := strings.TrimSpace(f.Image)
	if name == "" || image == "" {
		return Friend{}, false
	}
	id, ok := f.freshID()
	if !ok {
		return Friend{}, false
	}
	friend := Friend{
		ID:      id,
		Name:    name,
		Image:   image + string(id),
		Balance: decimal.Zero,
	}
	f.Reset()
	return friend, true
}

// Reset clears the name and restores the default image base.
func (f *Form) Reset() {
	f.Name = ""
	f.Image = f.avatarBase
}

func (f *Form) freshID() (ID, bool) {
	for range maxIDAttempts {
		id := f.newID()
		if id == "" {
			continue
		}
		if f.taken == nil || !f.taken(id) {
			return id, true
		}
	}
	return "", false
}
