package postgres

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ddlRe    = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS request_logs \((.*?)\);`)
	insertRe = regexp.MustCompile(`INSERT INTO request_logs \(([^)]+)\)`)
	selectRe = regexp.MustCompile(`SELECT ([^;]+?)\s+FROM request_logs`)
)

// The audit repo is the only one whose column names are not mirrored by a
// domain struct scan in an integration environment, so pin its queries to
// the shipped DDL.
func TestRequestLogQueriesMatchSchema(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	pkgDir := filepath.Dir(thisFile)

	schema, err := os.ReadFile(filepath.Join(pkgDir, "..", "..", "..", "scripts", "schema.sql"))
	require.NoError(t, err)
	repo, err := os.ReadFile(filepath.Join(pkgDir, "requestlog_repo.go"))
	require.NoError(t, err)

	ddl := ddlRe.FindStringSubmatch(string(schema))
	require.NotNil(t, ddl, "request_logs DDL not found in schema.sql")

	ddlColumns := map[string]bool{}
	for _, line := range strings.Split(ddl[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			ddlColumns[fields[0]] = true
		}
	}

	var queried []string
	insert := insertRe.FindStringSubmatch(string(repo))
	require.NotNil(t, insert, "request_logs INSERT not found in repository")
	queried = append(queried, strings.Split(insert[1], ",")...)

	sel := selectRe.FindStringSubmatch(string(repo))
	require.NotNil(t, sel, "request_logs SELECT not found in repository")
	queried = append(queried, strings.Split(sel[1], ",")...)

	for _, col := range queried {
		col = strings.TrimSpace(col)
		assert.True(t, ddlColumns[col], "repository queries column %q but request_logs DDL does not define it", col)
	}
}
