package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Ping(db))
	require.NoError(t, MigrateShared(db))
	require.NoError(t, MigrateModels(db, nil))

	user := models.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	assert.NotEqual(t, uuid.Nil, user.ID)

	dup := models.User{Name: "Ada 2", Email: "ada@example.com", Password: "hash"}
	assert.Error(t, db.Create(&dup).Error, "email must be unique")
}

type recordingWriter struct {
	lines []string
}

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	db, err := Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, MigrateShared(db))

	w := &recordingWriter{}
	quiet := db.Session(&gorm.Session{Logger: newGormLogger(w)})

	var user models.User
	err = quiet.First(&user, "email = ?", "nobody@example.com").Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, w.lines)

	err = quiet.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	assert.NotEmpty(t, w.lines, "real errors are still logged")
}
