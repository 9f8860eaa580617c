// Command useradmin creates an account directly in the database, bypassing
// the HTTP signup flow and its welcome email. Useful for bootstrapping an
// environment before the mail relay is configured.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/waterguard/backend/internal/buildinfo"
	"github.com/waterguard/backend/internal/cli"
	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/config"
	"github.com/waterguard/backend/internal/server/models"
	"github.com/waterguard/backend/internal/server/password"
	"github.com/waterguard/backend/internal/server/repositories/repomanager"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	name, err := cli.GetSimpleText(reader, "Enter name", os.Stdout)
	if err != nil {
		log.Fatalf("input error: %v", err)
	}
	email, err := cli.GetSimpleText(reader, "Enter email", os.Stdout)
	if err != nil {
		log.Fatalf("input error: %v", err)
	}
	pw, err := cli.GetPassword(os.Stdout)
	if err != nil {
		log.Fatalf("input error: %v", err)
	}
	defer common.WipeByteArray(pw)

	hash, err := password.Hash(string(pw))
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}

	user := &models.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash}
	created, err := rm.Users(db).Create(ctx, user)
	if err != nil {
		log.Fatalf("create error: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", created.Email, created.ID)
}
