package db

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/membership/internal/models"
	cfgpkg "github.com/fatflowers/membership/pkg/config"
)

func TestNewDB_SQLiteAutoMigrate(t *testing.T) {
	log := zap.NewNop().Sugar()
	cfg := &cfgpkg.Config{Database: cfgpkg.DBConfig{Driver: cfgpkg.DBDriverSQLite, DSN: "file::memory:"}}

	gdb, err := NewDB(log, cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(log, gdb))

	for _, m := range []any{&models.Membership{}, &models.MembershipLog{}, &models.Identity{}, &models.AdminBootstrap{}, &models.MembershipSequence{}} {
		require.True(t, gdb.Migrator().HasTable(m))
	}
}

func TestNewDB_RejectsEmptyDSN(t *testing.T) {
	_, err := NewDB(zap.NewNop().Sugar(), &cfgpkg.Config{Database: cfgpkg.DBConfig{Driver: cfgpkg.DBDriverSQLite}})
	require.Error(t, err)
}

func TestNewDB_RejectsUnknownDriver(t *testing.T) {
	_, err := NewDB(zap.NewNop().Sugar(), &cfgpkg.Config{Database: cfgpkg.DBConfig{Driver: "oracle", DSN: "x"}})
	require.Error(t, err)
}
