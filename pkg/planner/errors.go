package planner

import (
	"errors"
	"fmt"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// Resolve maps requested subject names to stored ones. Names are compared
// ignoring case and accents. Duplicates are removed, order is kept.
func Resolve(requested, known []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, NoSubjectsError()
	}

	idx := make(map[string]string, len(known))
	for _, k := range known {
		idx[catalog.Fold(k)] = k
	}

	var res []string
	seen := make(map[string]struct{})
	for _, r := range requested {
		name, ok := idx[catalog.Fold(r)]
		if !ok {
			return nil, UnknownSubjectError(r)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res, nil
}

func NoSubjectsError() error {
	return &gn.Error{
		Code: errcode.PlanNoSubjectsError,
		Msg:  "Give at least one subject to plan for",
		Err:  errors.New("no subjects requested"),
	}
}

func UnknownSubjectError(name string) error {
	msg := "Subject <em>%s</em> is not in the catalog"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.PlanUnknownSubjectError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown subject %q", name),
	}
}
