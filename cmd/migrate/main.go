package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
)

// Applies the schema in migrations/ to the Spanner database named by
// SPANNER_DATABASE. Point SPANNER_EMULATOR_HOST at the emulator for local
// runs; against a real instance the ambient gcloud credentials are used.
//
//	SPANNER_EMULATOR_HOST=localhost:9010 \
//	SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/inventory \
//	go run ./cmd/migrate
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		log.Fatal("SPANNER_DATABASE is required (projects/<p>/instances/<i>/databases/<d>)")
	}

	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		log.Fatalf("read DDL: %v", err)
	}
	if len(stmts) == 0 {
		log.Fatalf("no statements in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		log.Fatalf("database admin client: %v", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		log.Fatalf("UpdateDatabaseDdl: %v", err)
	}

	if err := op.Wait(ctx); err != nil {
		log.Fatalf("UpdateDatabaseDdl wait: %v", err)
	}

	fmt.Printf("applied %d DDL statements to %s\n", len(stmts), db)
}

// readDDLStatements splits the migration file on semicolons; Spanner's admin
// API wants one statement per element with no trailing separator.
func readDDLStatements(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(raw), "\r\n", "\n")

	var out []string
	for _, part := range strings.Split(sql, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}
