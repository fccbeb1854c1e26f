// Package planner builds timetables for a student: given the subjects
// wanted, it picks one section of each so that no two meetings overlap.
//
// Sections are nodes of a compatibility graph. Two sections are linked
// when they belong to different subjects and none of their meetings
// overlap. Every maximal clique of that graph is a set of mutually
// compatible sections; cliques are enumerated with Bron-Kerbosch with
// pivoting.
package planner

import (
	"cmp"
	"slices"
	"strings"

	"github.com/backwell/horario/pkg/conflict"
)

// Option is one section a student could enroll in.
type Option struct {
	Subject    string          `json:"subject"    yaml:"subject"`
	CourseKey  string          `json:"courseKey"  yaml:"course_key"`
	Instructor string          `json:"instructor" yaml:"instructor"`
	Slots      []conflict.Slot `json:"-"          yaml:"-"`
}

// Compatible reports whether two options can be taken together.
func (o Option) Compatible(other Option) bool {
	if o.Subject == other.Subject {
		return false
	}
	for _, a := range o.Slots {
		for _, b := range other.Slots {
			if a.Day == b.Day && a.Range.Overlaps(b.Range) {
				return false
			}
		}
	}
	return true
}

// Plan is a set of compatible options, one per subject.
type Plan struct {
	Options []Option `json:"options" yaml:"options"`
}

// Subjects returns subject names of the plan.
func (p Plan) Subjects() []string {
	res := make([]string, len(p.Options))
	for i, o := range p.Options {
		res[i] = o.Subject
	}
	return res
}

// Request describes what to plan for.
type Request struct {
	// Subjects lists wanted subjects. When empty every subject present in
	// the options is wanted.
	Subjects []string
	// MinSize accepts partial plans with at least this many subjects.
	// Zero means every wanted subject must be covered.
	MinSize int
}

// Generate returns every maximal set of compatible options that satisfies
// the request, largest first, then in lexical order of course keys.
func Generate(opts []Option, req Request) []Plan {
	want := make(map[string]struct{})
	for _, s := range req.Subjects {
		if s = strings.TrimSpace(s); s != "" {
			want[s] = struct{}{}
		}
	}

	var nodes []Option
	for _, o := range opts {
		if len(want) > 0 {
			if _, ok := want[o.Subject]; !ok {
				continue
			}
		}
		nodes = append(nodes, o)
	}
	slices.SortFunc(nodes, func(a, b Option) int {
		if c := cmp.Compare(a.Subject, b.Subject); c != 0 {
			return c
		}
		if c := cmp.Compare(a.CourseKey, b.CourseKey); c != 0 {
			return c
		}
		return cmp.Compare(a.Instructor, b.Instructor)
	})

	total := len(want)
	if total == 0 {
		seen := make(map[string]struct{})
		for _, n := range nodes {
			seen[n.Subject] = struct{}{}
		}
		total = len(seen)
	}
	need := total
	if req.MinSize > 0 && req.MinSize < total {
		need = req.MinSize
	}
	if need == 0 {
		return nil
	}

	adj := make([][]bool, len(nodes))
	for i := range nodes {
		adj[i] = make([]bool, len(nodes))
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Compatible(nodes[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	var cliques [][]int
	p := make([]int, len(nodes))
	for i := range p {
		p[i] = i
	}
	bronKerbosch(adj, nil, p, nil, &cliques)

	var res []Plan
	for _, c := range cliques {
		if len(c) < need {
			continue
		}
		slices.Sort(c)
		plan := Plan{Options: make([]Option, len(c))}
		for i, n := range c {
			plan.Options[i] = nodes[n]
		}
		res = append(res, plan)
	}

	slices.SortFunc(res, func(a, b Plan) int {
		if c := cmp.Compare(len(b.Options), len(a.Options)); c != 0 {
			return c
		}
		return cmp.Compare(planKey(a), planKey(b))
	})
	return res
}

func planKey(p Plan) string {
	keys := make([]string, len(p.Options))
	for i, o := range p.Options {
		keys[i] = o.Subject + "\x00" + o.CourseKey + "\x00" + o.Instructor
	}
	return strings.Join(keys, "\x01")
}

func bronKerbosch(adj [][]bool, r, p, x []int, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		*out = append(*out, slices.Clone(r))
		return
	}

	pivot, best := -1, -1
	for _, u := range slices.Concat(p, x) {
		n := 0
		for _, v := range p {
			if adj[u][v] {
				n++
			}
		}
		if n > best {
			pivot, best = u, n
		}
	}

	for _, v := range slices.Clone(p) {
		if pivot >= 0 && adj[pivot][v] {
			continue
		}
		bronKerbosch(adj,
			append(slices.Clone(r), v),
			neighbours(adj, v, p),
			neighbours(adj, v, x),
			out,
		)
		p = slices.DeleteFunc(p, func(u int) bool { return u == v })
		x = append(x, v)
	}
}

func neighbours(adj [][]bool, v int, set []int) []int {
	var res []int
	for _, u := range set {
		if adj[v][u] {
			res = append(res, u)
		}
	}
	return res
}
