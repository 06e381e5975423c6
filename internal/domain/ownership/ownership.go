package ownership

import "github.com/bandboard/bandboard/internal/httperr"

// Owned is implemented by records with a single owning account
// (Band, Announcement).
type Owned interface {
	OwnerAccountID() uint
}

// Require returns a forbidden business error when the acting account does
// not own the record. Lookup failures are reported by the caller as
// not-found before this check, keeping 404 and 403 distinguishable.
func Require(record Owned, actorID uint) error {
	if record.OwnerAccountID() != actorID {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}
