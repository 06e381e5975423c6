package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

func TestRequireOwner(t *testing.T) {
	band := &models.Band{ID: 1, OwnerID: 42}

	assert.NoError(t, Require(band, 42))

	err := Require(band, 7)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestRequireOwnerAnnouncement(t *testing.T) {
	a := &models.Announcement{ID: 1, OwnerID: 10}

	assert.NoError(t, Require(a, 10))
	assert.True(t, httperr.IsBusiness(Require(a, 11), "forbidden"))
}
