package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		`"bakery.db"`:       "bakery.db",
		"  bakery.db  ":     "bakery.db",
		"'postgres://x/y'":  "postgres://x/y",
		"file:test?mode=ro": "file:test?mode=ro",
	}
	for in, want := range cases {
		if got := NormalizeDSN(in); got != want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsPostgres(t *testing.T) {
	if !IsPostgres("postgres://u:p@localhost/db") {
		t.Error("postgres URL not detected")
	}
	if !IsPostgres("postgresql://u:p@localhost/db") {
		t.Error("postgresql URL not detected")
	}
	if IsPostgres("bakery.db") {
		t.Error("sqlite path misdetected as postgres")
	}
}

func TestMigrateURL(t *testing.T) {
	if got := migrateURL("bakery.db"); got != "sqlite3://bakery.db" {
		t.Errorf("migrateURL(bakery.db) = %q", got)
	}
	pg := "postgres://u:p@localhost/db?sslmode=disable"
	if got := migrateURL(pg); got != pg {
		t.Errorf("postgres DSN must pass through, got %q", got)
	}
}
