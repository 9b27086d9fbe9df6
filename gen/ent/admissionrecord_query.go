// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/predicate"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// AdmissionRecordQuery is the builder for querying AdmissionRecord entities.
type AdmissionRecordQuery struct {
	config
	ctx               *QueryContext
	order             []admissionrecord.OrderOption
	inters            []Interceptor
	predicates        []predicate.AdmissionRecord
	withVerifications *VerificationRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AdmissionRecordQuery builder.
func (_q *AdmissionRecordQuery) Where(ps ...predicate.AdmissionRecord) *AdmissionRecordQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AdmissionRecordQuery) Limit(limit int) *AdmissionRecordQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AdmissionRecordQuery) Offset(offset int) *AdmissionRecordQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AdmissionRecordQuery) Unique(unique bool) *AdmissionRecordQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AdmissionRecordQuery) Order(o ...admissionrecord.OrderOption) *AdmissionRecordQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVerifications chains the current query on the "verifications" edge.
func (_q *AdmissionRecordQuery) QueryVerifications() *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(admissionrecord.Table, admissionrecord.FieldID, selector),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, admissionrecord.VerificationsTable, admissionrecord.VerificationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AdmissionRecord entity from the query.
// Returns a *NotFoundError when no AdmissionRecord was found.
func (_q *AdmissionRecordQuery) First(ctx context.Context) (*AdmissionRecord, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{admissionrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AdmissionRecordQuery) FirstX(ctx context.Context) *AdmissionRecord {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AdmissionRecord ID from the query.
// Returns a *NotFoundError when no AdmissionRecord ID was found.
func (_q *AdmissionRecordQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{admissionrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AdmissionRecordQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AdmissionRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AdmissionRecord entity is found.
// Returns a *NotFoundError when no AdmissionRecord entities are found.
func (_q *AdmissionRecordQuery) Only(ctx context.Context) (*AdmissionRecord, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{admissionrecord.Label}
	default:
		return nil, &NotSingularError{admissionrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AdmissionRecordQuery) OnlyX(ctx context.Context) *AdmissionRecord {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AdmissionRecord ID in the query.
// Returns a *NotSingularError when more than one AdmissionRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AdmissionRecordQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{admissionrecord.Label}
	default:
		err = &NotSingularError{admissionrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AdmissionRecordQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AdmissionRecords.
func (_q *AdmissionRecordQuery) All(ctx context.Context) ([]*AdmissionRecord, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AdmissionRecord, *AdmissionRecordQuery]()
	return withInterceptors[[]*AdmissionRecord](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AdmissionRecordQuery) AllX(ctx context.Context) []*AdmissionRecord {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AdmissionRecord IDs.
func (_q *AdmissionRecordQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(admissionrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AdmissionRecordQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AdmissionRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AdmissionRecordQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AdmissionRecordQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AdmissionRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AdmissionRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AdmissionRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AdmissionRecordQuery) Clone() *AdmissionRecordQuery {
	if _q == nil {
		return nil
	}
	return &AdmissionRecordQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]admissionrecord.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.AdmissionRecord{}, _q.predicates...),
		withVerifications: _q.withVerifications.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVerifications tells the query-builder to eager-load the nodes that are connected to
// the "verifications" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AdmissionRecordQuery) WithVerifications(opts ...func(*VerificationRecordQuery)) *AdmissionRecordQuery {
	query := (&VerificationRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVerifications = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Year int `json:"year,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AdmissionRecord.Query().
//		GroupBy(admissionrecord.FieldYear).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AdmissionRecordQuery) GroupBy(field string, fields ...string) *AdmissionRecordGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AdmissionRecordGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = admissionrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Year int `json:"year,omitempty"`
//	}
//
//	client.AdmissionRecord.Query().
//		Select(admissionrecord.FieldYear).
//		Scan(ctx, &v)
func (_q *AdmissionRecordQuery) Select(fields ...string) *AdmissionRecordSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AdmissionRecordSelect{AdmissionRecordQuery: _q}
	sbuild.label = admissionrecord.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AdmissionRecordSelect configured with the given aggregations.
func (_q *AdmissionRecordQuery) Aggregate(fns ...AggregateFunc) *AdmissionRecordSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AdmissionRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !admissionrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AdmissionRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AdmissionRecord, error) {
	var (
		nodes       = []*AdmissionRecord{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withVerifications != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AdmissionRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AdmissionRecord{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withVerifications; query != nil {
		if err := _q.loadVerifications(ctx, query, nodes,
			func(n *AdmissionRecord) { n.Edges.Verifications = []*VerificationRecord{} },
			func(n *AdmissionRecord, e *VerificationRecord) {
				n.Edges.Verifications = append(n.Edges.Verifications, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AdmissionRecordQuery) loadVerifications(ctx context.Context, query *VerificationRecordQuery, nodes []*AdmissionRecord, init func(*AdmissionRecord), assign func(*AdmissionRecord, *VerificationRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*AdmissionRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(verificationrecord.FieldRecordID)
	}
	query.Where(predicate.VerificationRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(admissionrecord.VerificationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecordID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "record_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AdmissionRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AdmissionRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(admissionrecord.Table, admissionrecord.Columns, sqlgraph.NewFieldSpec(admissionrecord.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, admissionrecord.FieldID)
		for i := range fields {
			if fields[i] != admissionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AdmissionRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(admissionrecord.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = admissionrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AdmissionRecordGroupBy is the group-by builder for AdmissionRecord entities.
type AdmissionRecordGroupBy struct {
	selector
	build *AdmissionRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AdmissionRecordGroupBy) Aggregate(fns ...AggregateFunc) *AdmissionRecordGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AdmissionRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdmissionRecordQuery, *AdmissionRecordGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AdmissionRecordGroupBy) sqlScan(ctx context.Context, root *AdmissionRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AdmissionRecordSelect is the builder for selecting fields of AdmissionRecord entities.
type AdmissionRecordSelect struct {
	*AdmissionRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AdmissionRecordSelect) Aggregate(fns ...AggregateFunc) *AdmissionRecordSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AdmissionRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdmissionRecordQuery, *AdmissionRecordSelect](ctx, _s.AdmissionRecordQuery, _s, _s.inters, v)
}

func (_s *AdmissionRecordSelect) sqlScan(ctx context.Context, root *AdmissionRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
