// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
)

// filter accumulates equality conditions for list endpoints, numbering
// placeholders as it goes.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(column string, value any) {
	f.args = append(f.args, value)
	f.conds = append(f.conds, fmt.Sprintf("%s = $%d", column, len(f.args)))
}

// search matches term as a case-insensitive substring of any of columns.
// LIKE wildcards in term are matched literally.
func (f *filter) search(term string, columns ...string) {
	f.args = append(f.args, "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	n := len(f.args)
	likes := make([]string, len(columns))
	for i, c := range columns {
		likes[i] = fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, c, n)
	}
	f.conds = append(f.conds, "("+strings.Join(likes, " OR ")+")")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page returns a LIMIT/OFFSET clause and the full argument list for it
func (f *filter) page(page, limit int) (string, []any) {
	n := len(f.args)
	args := append(append([]any{}, f.args...), limit, (page-1)*limit)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
