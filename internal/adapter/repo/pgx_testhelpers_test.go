package repo

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeSQL satisfies infra.SQLExecutor by serving canned rows keyed on the
// sqlinline constant, so repository scan paths run without a database.
type fakeSQL struct {
	rows      map[string][][]any
	errs      map[string]error
	execs     []string
	queryArgs map[string][]any
}

func (f *fakeSQL) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, query)
	if err := f.errs[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if f.queryArgs == nil {
		f.queryArgs = map[string][]any{}
	}
	f.queryArgs[query] = args
	if err := f.errs[query]; err != nil {
		return fakeRow{err: err}
	}
	rows, ok := f.rows[query]
	if !ok || len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func (f *fakeSQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return &fakeRows{values: f.rows[query]}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.values)
}

// fakeRows implements the pgx.Rows surface the repositories touch; the
// remaining interface methods return zero values.
type fakeRows struct {
	values [][]any
	idx    int
	err    error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignAll(dest, r.values[r.idx-1])
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

var _ pgx.Rows = (*fakeRows)(nil)

func assignAll(dest, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		if err := assign(dest[i], v); err != nil {
			return fmt.Errorf("scan: column %d: %w", i, err)
		}
	}
	return nil
}

func assign(dst, src any) error {
	switch d := dst.(type) {
	case *string:
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("want string, have %T", src)
		}
		*d = s
	case **string:
		switch s := src.(type) {
		case nil:
			*d = nil
		case string:
			v := s
			*d = &v
		case *string:
			*d = s
		default:
			return fmt.Errorf("want *string, have %T", src)
		}
	case *float64:
		f, ok := src.(float64)
		if !ok {
			return fmt.Errorf("want float64, have %T", src)
		}
		*d = f
	case *bool:
		b, ok := src.(bool)
		if !ok {
			return fmt.Errorf("want bool, have %T", src)
		}
		*d = b
	case *int64:
		switch n := src.(type) {
		case int64:
			*d = n
		case int:
			*d = int64(n)
		default:
			return fmt.Errorf("want int64, have %T", src)
		}
	case *time.Time:
		t, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("want time.Time, have %T", src)
		}
		*d = t
	default:
		return assignReflected(dst, src)
	}
	return nil
}

// assignReflected covers destinations whose static type is a domain
// enum (string underneath) without enumerating each one here.
func assignReflected(dst, src any) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("unsupported destination %T for %T", dst, src)
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("destination %T is not a pointer", dst)
	}
	ev := rv.Elem()
	if ev.Kind() != reflect.String {
		return fmt.Errorf("destination %T is not string-kinded", dst)
	}
	ev.SetString(s)
	return nil
}
