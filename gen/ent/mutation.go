// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/dataproduct"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/predicate"
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDataProduct   = "DataProduct"
	TypeJob           = "Job"
	TypeRawData       = "RawData"
	TypeVectorFeature = "VectorFeature"
)

// DataProductMutation represents an operation that mutates the DataProduct nodes in the graph.
type DataProductMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	project_id                      *uuid.UUID
	data_type                       *string
	filepath                        *string
	original_filename               *string
	metadata                        *json.RawMessage
	appendmetadata                  json.RawMessage
	default_symbology               *json.RawMessage
	appenddefault_symbology         json.RawMessage
	is_active                       *bool
	is_initial_processing_completed *bool
	deactivated_at                  *time.Time
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	jobs                            map[uuid.UUID]struct{}
	removedjobs                     map[uuid.UUID]struct{}
	clearedjobs                     bool
	done                            bool
	oldValue                        func(context.Context) (*DataProduct, error)
	predicates                      []predicate.DataProduct
}

var _ ent.Mutation = (*DataProductMutation)(nil)

// dataproductOption allows management of the mutation configuration using functional options.
type dataproductOption func(*DataProductMutation)

// newDataProductMutation creates new mutation for the DataProduct entity.
func newDataProductMutation(c config, op Op, opts ...dataproductOption) *DataProductMutation {
	m := &DataProductMutation{
		config:        c,
		op:            op,
		typ:           TypeDataProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataProductID sets the ID field of the mutation.
func withDataProductID(id uuid.UUID) dataproductOption {
	return func(m *DataProductMutation) {
		var (
			err   error
			once  sync.Once
			value *DataProduct
		)
		m.oldValue = func(ctx context.Context) (*DataProduct, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataProduct.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataProduct sets the old DataProduct of the mutation.
func withDataProduct(node *DataProduct) dataproductOption {
	return func(m *DataProductMutation) {
		m.oldValue = func(context.Context) (*DataProduct, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataProduct entities.
func (m *DataProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataProduct.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DataProductMutation) SetProjectID(u uuid.UUID) {
	m.project_id = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DataProductMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DataProductMutation) ResetProjectID() {
	m.project_id = nil
}

// SetDataType sets the "data_type" field.
func (m *DataProductMutation) SetDataType(s string) {
	m.data_type = &s
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *DataProductMutation) DataType() (r string, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldDataType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *DataProductMutation) ResetDataType() {
	m.data_type = nil
}

// SetFilepath sets the "filepath" field.
func (m *DataProductMutation) SetFilepath(s string) {
	m.filepath = &s
}

// Filepath returns the value of the "filepath" field in the mutation.
func (m *DataProductMutation) Filepath() (r string, exists bool) {
	v := m.filepath
	if v == nil {
		return
	}
	return *v, true
}

// OldFilepath returns the old "filepath" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldFilepath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilepath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilepath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilepath: %w", err)
	}
	return oldValue.Filepath, nil
}

// ResetFilepath resets all changes to the "filepath" field.
func (m *DataProductMutation) ResetFilepath() {
	m.filepath = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DataProductMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DataProductMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DataProductMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetMetadata sets the "metadata" field.
func (m *DataProductMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *DataProductMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *DataProductMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *DataProductMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *DataProductMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[dataproduct.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *DataProductMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[dataproduct.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *DataProductMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, dataproduct.FieldMetadata)
}

// SetDefaultSymbology sets the "default_symbology" field.
func (m *DataProductMutation) SetDefaultSymbology(jm json.RawMessage) {
	m.default_symbology = &jm
	m.appenddefault_symbology = nil
}

// DefaultSymbology returns the value of the "default_symbology" field in the mutation.
func (m *DataProductMutation) DefaultSymbology() (r json.RawMessage, exists bool) {
	v := m.default_symbology
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultSymbology returns the old "default_symbology" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldDefaultSymbology(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultSymbology is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultSymbology requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultSymbology: %w", err)
	}
	return oldValue.DefaultSymbology, nil
}

// AppendDefaultSymbology adds jm to the "default_symbology" field.
func (m *DataProductMutation) AppendDefaultSymbology(jm json.RawMessage) {
	m.appenddefault_symbology = append(m.appenddefault_symbology, jm...)
}

// AppendedDefaultSymbology returns the list of values that were appended to the "default_symbology" field in this mutation.
func (m *DataProductMutation) AppendedDefaultSymbology() (json.RawMessage, bool) {
	if len(m.appenddefault_symbology) == 0 {
		return nil, false
	}
	return m.appenddefault_symbology, true
}

// ClearDefaultSymbology clears the value of the "default_symbology" field.
func (m *DataProductMutation) ClearDefaultSymbology() {
	m.default_symbology = nil
	m.appenddefault_symbology = nil
	m.clearedFields[dataproduct.FieldDefaultSymbology] = struct{}{}
}

// DefaultSymbologyCleared returns if the "default_symbology" field was cleared in this mutation.
func (m *DataProductMutation) DefaultSymbologyCleared() bool {
	_, ok := m.clearedFields[dataproduct.FieldDefaultSymbology]
	return ok
}

// ResetDefaultSymbology resets all changes to the "default_symbology" field.
func (m *DataProductMutation) ResetDefaultSymbology() {
	m.default_symbology = nil
	m.appenddefault_symbology = nil
	delete(m.clearedFields, dataproduct.FieldDefaultSymbology)
}

// SetIsActive sets the "is_active" field.
func (m *DataProductMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DataProductMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DataProductMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (m *DataProductMutation) SetIsInitialProcessingCompleted(b bool) {
	m.is_initial_processing_completed = &b
}

// IsInitialProcessingCompleted returns the value of the "is_initial_processing_completed" field in the mutation.
func (m *DataProductMutation) IsInitialProcessingCompleted() (r bool, exists bool) {
	v := m.is_initial_processing_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInitialProcessingCompleted returns the old "is_initial_processing_completed" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldIsInitialProcessingCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInitialProcessingCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInitialProcessingCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInitialProcessingCompleted: %w", err)
	}
	return oldValue.IsInitialProcessingCompleted, nil
}

// ResetIsInitialProcessingCompleted resets all changes to the "is_initial_processing_completed" field.
func (m *DataProductMutation) ResetIsInitialProcessingCompleted() {
	m.is_initial_processing_completed = nil
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (m *DataProductMutation) SetDeactivatedAt(t time.Time) {
	m.deactivated_at = &t
}

// DeactivatedAt returns the value of the "deactivated_at" field in the mutation.
func (m *DataProductMutation) DeactivatedAt() (r time.Time, exists bool) {
	v := m.deactivated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeactivatedAt returns the old "deactivated_at" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldDeactivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeactivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeactivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeactivatedAt: %w", err)
	}
	return oldValue.DeactivatedAt, nil
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (m *DataProductMutation) ClearDeactivatedAt() {
	m.deactivated_at = nil
	m.clearedFields[dataproduct.FieldDeactivatedAt] = struct{}{}
}

// DeactivatedAtCleared returns if the "deactivated_at" field was cleared in this mutation.
func (m *DataProductMutation) DeactivatedAtCleared() bool {
	_, ok := m.clearedFields[dataproduct.FieldDeactivatedAt]
	return ok
}

// ResetDeactivatedAt resets all changes to the "deactivated_at" field.
func (m *DataProductMutation) ResetDeactivatedAt() {
	m.deactivated_at = nil
	delete(m.clearedFields, dataproduct.FieldDeactivatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DataProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DataProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DataProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DataProduct entity.
// If the DataProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DataProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *DataProductMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *DataProductMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *DataProductMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *DataProductMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *DataProductMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DataProductMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DataProductMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DataProductMutation builder.
func (m *DataProductMutation) Where(ps ...predicate.DataProduct) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataProduct, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataProduct).
func (m *DataProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataProductMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project_id != nil {
		fields = append(fields, dataproduct.FieldProjectID)
	}
	if m.data_type != nil {
		fields = append(fields, dataproduct.FieldDataType)
	}
	if m.filepath != nil {
		fields = append(fields, dataproduct.FieldFilepath)
	}
	if m.original_filename != nil {
		fields = append(fields, dataproduct.FieldOriginalFilename)
	}
	if m.metadata != nil {
		fields = append(fields, dataproduct.FieldMetadata)
	}
	if m.default_symbology != nil {
		fields = append(fields, dataproduct.FieldDefaultSymbology)
	}
	if m.is_active != nil {
		fields = append(fields, dataproduct.FieldIsActive)
	}
	if m.is_initial_processing_completed != nil {
		fields = append(fields, dataproduct.FieldIsInitialProcessingCompleted)
	}
	if m.deactivated_at != nil {
		fields = append(fields, dataproduct.FieldDeactivatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, dataproduct.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dataproduct.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataproduct.FieldProjectID:
		return m.ProjectID()
	case dataproduct.FieldDataType:
		return m.DataType()
	case dataproduct.FieldFilepath:
		return m.Filepath()
	case dataproduct.FieldOriginalFilename:
		return m.OriginalFilename()
	case dataproduct.FieldMetadata:
		return m.Metadata()
	case dataproduct.FieldDefaultSymbology:
		return m.DefaultSymbology()
	case dataproduct.FieldIsActive:
		return m.IsActive()
	case dataproduct.FieldIsInitialProcessingCompleted:
		return m.IsInitialProcessingCompleted()
	case dataproduct.FieldDeactivatedAt:
		return m.DeactivatedAt()
	case dataproduct.FieldCreatedAt:
		return m.CreatedAt()
	case dataproduct.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataproduct.FieldProjectID:
		return m.OldProjectID(ctx)
	case dataproduct.FieldDataType:
		return m.OldDataType(ctx)
	case dataproduct.FieldFilepath:
		return m.OldFilepath(ctx)
	case dataproduct.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case dataproduct.FieldMetadata:
		return m.OldMetadata(ctx)
	case dataproduct.FieldDefaultSymbology:
		return m.OldDefaultSymbology(ctx)
	case dataproduct.FieldIsActive:
		return m.OldIsActive(ctx)
	case dataproduct.FieldIsInitialProcessingCompleted:
		return m.OldIsInitialProcessingCompleted(ctx)
	case dataproduct.FieldDeactivatedAt:
		return m.OldDeactivatedAt(ctx)
	case dataproduct.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dataproduct.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DataProduct field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataproduct.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case dataproduct.FieldDataType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case dataproduct.FieldFilepath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilepath(v)
		return nil
	case dataproduct.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case dataproduct.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case dataproduct.FieldDefaultSymbology:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultSymbology(v)
		return nil
	case dataproduct.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case dataproduct.FieldIsInitialProcessingCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInitialProcessingCompleted(v)
		return nil
	case dataproduct.FieldDeactivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeactivatedAt(v)
		return nil
	case dataproduct.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dataproduct.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DataProduct field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DataProduct numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataproduct.FieldMetadata) {
		fields = append(fields, dataproduct.FieldMetadata)
	}
	if m.FieldCleared(dataproduct.FieldDefaultSymbology) {
		fields = append(fields, dataproduct.FieldDefaultSymbology)
	}
	if m.FieldCleared(dataproduct.FieldDeactivatedAt) {
		fields = append(fields, dataproduct.FieldDeactivatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataProductMutation) ClearField(name string) error {
	switch name {
	case dataproduct.FieldMetadata:
		m.ClearMetadata()
		return nil
	case dataproduct.FieldDefaultSymbology:
		m.ClearDefaultSymbology()
		return nil
	case dataproduct.FieldDeactivatedAt:
		m.ClearDeactivatedAt()
		return nil
	}
	return fmt.Errorf("unknown DataProduct nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataProductMutation) ResetField(name string) error {
	switch name {
	case dataproduct.FieldProjectID:
		m.ResetProjectID()
		return nil
	case dataproduct.FieldDataType:
		m.ResetDataType()
		return nil
	case dataproduct.FieldFilepath:
		m.ResetFilepath()
		return nil
	case dataproduct.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case dataproduct.FieldMetadata:
		m.ResetMetadata()
		return nil
	case dataproduct.FieldDefaultSymbology:
		m.ResetDefaultSymbology()
		return nil
	case dataproduct.FieldIsActive:
		m.ResetIsActive()
		return nil
	case dataproduct.FieldIsInitialProcessingCompleted:
		m.ResetIsInitialProcessingCompleted()
		return nil
	case dataproduct.FieldDeactivatedAt:
		m.ResetDeactivatedAt()
		return nil
	case dataproduct.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dataproduct.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DataProduct field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, dataproduct.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataproduct.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, dataproduct.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dataproduct.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, dataproduct.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataProductMutation) EdgeCleared(name string) bool {
	switch name {
	case dataproduct.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataProductMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DataProduct unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataProductMutation) ResetEdge(name string) error {
	switch name {
	case dataproduct.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown DataProduct edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	state               *string
	status              *string
	extra               *json.RawMessage
	appendextra         json.RawMessage
	start_time          *time.Time
	end_time            *time.Time
	clearedFields       map[string]struct{}
	data_product        *uuid.UUID
	cleareddata_product bool
	raw_data            *uuid.UUID
	clearedraw_data     bool
	done                bool
	oldValue            func(context.Context) (*Job, error)
	predicates          []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetState sets the "state" field.
func (m *JobMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *JobMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobMutation) ResetState() {
	m.state = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *JobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[job.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *JobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[job.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, job.FieldStatus)
}

// SetExtra sets the "extra" field.
func (m *JobMutation) SetExtra(jm json.RawMessage) {
	m.extra = &jm
	m.appendextra = nil
}

// Extra returns the value of the "extra" field in the mutation.
func (m *JobMutation) Extra() (r json.RawMessage, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldExtra(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// AppendExtra adds jm to the "extra" field.
func (m *JobMutation) AppendExtra(jm json.RawMessage) {
	m.appendextra = append(m.appendextra, jm...)
}

// AppendedExtra returns the list of values that were appended to the "extra" field in this mutation.
func (m *JobMutation) AppendedExtra() (json.RawMessage, bool) {
	if len(m.appendextra) == 0 {
		return nil, false
	}
	return m.appendextra, true
}

// ClearExtra clears the value of the "extra" field.
func (m *JobMutation) ClearExtra() {
	m.extra = nil
	m.appendextra = nil
	m.clearedFields[job.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *JobMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[job.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *JobMutation) ResetExtra() {
	m.extra = nil
	m.appendextra = nil
	delete(m.clearedFields, job.FieldExtra)
}

// SetStartTime sets the "start_time" field.
func (m *JobMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *JobMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *JobMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[job.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *JobMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[job.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *JobMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, job.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *JobMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *JobMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *JobMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[job.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *JobMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[job.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *JobMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, job.FieldEndTime)
}

// SetDataProductID sets the "data_product_id" field.
func (m *JobMutation) SetDataProductID(u uuid.UUID) {
	m.data_product = &u
}

// DataProductID returns the value of the "data_product_id" field in the mutation.
func (m *JobMutation) DataProductID() (r uuid.UUID, exists bool) {
	v := m.data_product
	if v == nil {
		return
	}
	return *v, true
}

// OldDataProductID returns the old "data_product_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDataProductID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataProductID: %w", err)
	}
	return oldValue.DataProductID, nil
}

// ClearDataProductID clears the value of the "data_product_id" field.
func (m *JobMutation) ClearDataProductID() {
	m.data_product = nil
	m.clearedFields[job.FieldDataProductID] = struct{}{}
}

// DataProductIDCleared returns if the "data_product_id" field was cleared in this mutation.
func (m *JobMutation) DataProductIDCleared() bool {
	_, ok := m.clearedFields[job.FieldDataProductID]
	return ok
}

// ResetDataProductID resets all changes to the "data_product_id" field.
func (m *JobMutation) ResetDataProductID() {
	m.data_product = nil
	delete(m.clearedFields, job.FieldDataProductID)
}

// SetRawDataID sets the "raw_data_id" field.
func (m *JobMutation) SetRawDataID(u uuid.UUID) {
	m.raw_data = &u
}

// RawDataID returns the value of the "raw_data_id" field in the mutation.
func (m *JobMutation) RawDataID() (r uuid.UUID, exists bool) {
	v := m.raw_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRawDataID returns the old "raw_data_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRawDataID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawDataID: %w", err)
	}
	return oldValue.RawDataID, nil
}

// ClearRawDataID clears the value of the "raw_data_id" field.
func (m *JobMutation) ClearRawDataID() {
	m.raw_data = nil
	m.clearedFields[job.FieldRawDataID] = struct{}{}
}

// RawDataIDCleared returns if the "raw_data_id" field was cleared in this mutation.
func (m *JobMutation) RawDataIDCleared() bool {
	_, ok := m.clearedFields[job.FieldRawDataID]
	return ok
}

// ResetRawDataID resets all changes to the "raw_data_id" field.
func (m *JobMutation) ResetRawDataID() {
	m.raw_data = nil
	delete(m.clearedFields, job.FieldRawDataID)
}

// ClearDataProduct clears the "data_product" edge to the DataProduct entity.
func (m *JobMutation) ClearDataProduct() {
	m.cleareddata_product = true
	m.clearedFields[job.FieldDataProductID] = struct{}{}
}

// DataProductCleared reports if the "data_product" edge to the DataProduct entity was cleared.
func (m *JobMutation) DataProductCleared() bool {
	return m.DataProductIDCleared() || m.cleareddata_product
}

// DataProductIDs returns the "data_product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataProductID instead. It exists only for internal usage by the builders.
func (m *JobMutation) DataProductIDs() (ids []uuid.UUID) {
	if id := m.data_product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDataProduct resets all changes to the "data_product" edge.
func (m *JobMutation) ResetDataProduct() {
	m.data_product = nil
	m.cleareddata_product = false
}

// ClearRawData clears the "raw_data" edge to the RawData entity.
func (m *JobMutation) ClearRawData() {
	m.clearedraw_data = true
	m.clearedFields[job.FieldRawDataID] = struct{}{}
}

// RawDataCleared reports if the "raw_data" edge to the RawData entity was cleared.
func (m *JobMutation) RawDataCleared() bool {
	return m.RawDataIDCleared() || m.clearedraw_data
}

// RawDataIDs returns the "raw_data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawDataID instead. It exists only for internal usage by the builders.
func (m *JobMutation) RawDataIDs() (ids []uuid.UUID) {
	if id := m.raw_data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawData resets all changes to the "raw_data" edge.
func (m *JobMutation) ResetRawData() {
	m.raw_data = nil
	m.clearedraw_data = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.state != nil {
		fields = append(fields, job.FieldState)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.extra != nil {
		fields = append(fields, job.FieldExtra)
	}
	if m.start_time != nil {
		fields = append(fields, job.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, job.FieldEndTime)
	}
	if m.data_product != nil {
		fields = append(fields, job.FieldDataProductID)
	}
	if m.raw_data != nil {
		fields = append(fields, job.FieldRawDataID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldName:
		return m.Name()
	case job.FieldState:
		return m.State()
	case job.FieldStatus:
		return m.Status()
	case job.FieldExtra:
		return m.Extra()
	case job.FieldStartTime:
		return m.StartTime()
	case job.FieldEndTime:
		return m.EndTime()
	case job.FieldDataProductID:
		return m.DataProductID()
	case job.FieldRawDataID:
		return m.RawDataID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldState:
		return m.OldState(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldExtra:
		return m.OldExtra(ctx)
	case job.FieldStartTime:
		return m.OldStartTime(ctx)
	case job.FieldEndTime:
		return m.OldEndTime(ctx)
	case job.FieldDataProductID:
		return m.OldDataProductID(ctx)
	case job.FieldRawDataID:
		return m.OldRawDataID(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldExtra:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case job.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case job.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case job.FieldDataProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataProductID(v)
		return nil
	case job.FieldRawDataID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawDataID(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldStatus) {
		fields = append(fields, job.FieldStatus)
	}
	if m.FieldCleared(job.FieldExtra) {
		fields = append(fields, job.FieldExtra)
	}
	if m.FieldCleared(job.FieldStartTime) {
		fields = append(fields, job.FieldStartTime)
	}
	if m.FieldCleared(job.FieldEndTime) {
		fields = append(fields, job.FieldEndTime)
	}
	if m.FieldCleared(job.FieldDataProductID) {
		fields = append(fields, job.FieldDataProductID)
	}
	if m.FieldCleared(job.FieldRawDataID) {
		fields = append(fields, job.FieldRawDataID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldStatus:
		m.ClearStatus()
		return nil
	case job.FieldExtra:
		m.ClearExtra()
		return nil
	case job.FieldStartTime:
		m.ClearStartTime()
		return nil
	case job.FieldEndTime:
		m.ClearEndTime()
		return nil
	case job.FieldDataProductID:
		m.ClearDataProductID()
		return nil
	case job.FieldRawDataID:
		m.ClearRawDataID()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldState:
		m.ResetState()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldExtra:
		m.ResetExtra()
		return nil
	case job.FieldStartTime:
		m.ResetStartTime()
		return nil
	case job.FieldEndTime:
		m.ResetEndTime()
		return nil
	case job.FieldDataProductID:
		m.ResetDataProductID()
		return nil
	case job.FieldRawDataID:
		m.ResetRawDataID()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.data_product != nil {
		edges = append(edges, job.EdgeDataProduct)
	}
	if m.raw_data != nil {
		edges = append(edges, job.EdgeRawData)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeDataProduct:
		if id := m.data_product; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeRawData:
		if id := m.raw_data; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddata_product {
		edges = append(edges, job.EdgeDataProduct)
	}
	if m.clearedraw_data {
		edges = append(edges, job.EdgeRawData)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeDataProduct:
		return m.cleareddata_product
	case job.EdgeRawData:
		return m.clearedraw_data
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeDataProduct:
		m.ClearDataProduct()
		return nil
	case job.EdgeRawData:
		m.ClearRawData()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeDataProduct:
		m.ResetDataProduct()
		return nil
	case job.EdgeRawData:
		m.ResetRawData()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// RawDataMutation represents an operation that mutates the RawData nodes in the graph.
type RawDataMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	project_id                      *uuid.UUID
	filepath                        *string
	original_filename               *string
	is_active                       *bool
	is_initial_processing_completed *bool
	deactivated_at                  *time.Time
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	jobs                            map[uuid.UUID]struct{}
	removedjobs                     map[uuid.UUID]struct{}
	clearedjobs                     bool
	done                            bool
	oldValue                        func(context.Context) (*RawData, error)
	predicates                      []predicate.RawData
}

var _ ent.Mutation = (*RawDataMutation)(nil)

// rawdataOption allows management of the mutation configuration using functional options.
type rawdataOption func(*RawDataMutation)

// newRawDataMutation creates new mutation for the RawData entity.
func newRawDataMutation(c config, op Op, opts ...rawdataOption) *RawDataMutation {
	m := &RawDataMutation{
		config:        c,
		op:            op,
		typ:           TypeRawData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawDataID sets the ID field of the mutation.
func withRawDataID(id uuid.UUID) rawdataOption {
	return func(m *RawDataMutation) {
		var (
			err   error
			once  sync.Once
			value *RawData
		)
		m.oldValue = func(ctx context.Context) (*RawData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawData sets the old RawData of the mutation.
func withRawData(node *RawData) rawdataOption {
	return func(m *RawDataMutation) {
		m.oldValue = func(context.Context) (*RawData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RawData entities.
func (m *RawDataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawDataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawDataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *RawDataMutation) SetProjectID(u uuid.UUID) {
	m.project_id = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RawDataMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RawDataMutation) ResetProjectID() {
	m.project_id = nil
}

// SetFilepath sets the "filepath" field.
func (m *RawDataMutation) SetFilepath(s string) {
	m.filepath = &s
}

// Filepath returns the value of the "filepath" field in the mutation.
func (m *RawDataMutation) Filepath() (r string, exists bool) {
	v := m.filepath
	if v == nil {
		return
	}
	return *v, true
}

// OldFilepath returns the old "filepath" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldFilepath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilepath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilepath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilepath: %w", err)
	}
	return oldValue.Filepath, nil
}

// ResetFilepath resets all changes to the "filepath" field.
func (m *RawDataMutation) ResetFilepath() {
	m.filepath = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *RawDataMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *RawDataMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *RawDataMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetIsActive sets the "is_active" field.
func (m *RawDataMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RawDataMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RawDataMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (m *RawDataMutation) SetIsInitialProcessingCompleted(b bool) {
	m.is_initial_processing_completed = &b
}

// IsInitialProcessingCompleted returns the value of the "is_initial_processing_completed" field in the mutation.
func (m *RawDataMutation) IsInitialProcessingCompleted() (r bool, exists bool) {
	v := m.is_initial_processing_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInitialProcessingCompleted returns the old "is_initial_processing_completed" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldIsInitialProcessingCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInitialProcessingCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInitialProcessingCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInitialProcessingCompleted: %w", err)
	}
	return oldValue.IsInitialProcessingCompleted, nil
}

// ResetIsInitialProcessingCompleted resets all changes to the "is_initial_processing_completed" field.
func (m *RawDataMutation) ResetIsInitialProcessingCompleted() {
	m.is_initial_processing_completed = nil
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (m *RawDataMutation) SetDeactivatedAt(t time.Time) {
	m.deactivated_at = &t
}

// DeactivatedAt returns the value of the "deactivated_at" field in the mutation.
func (m *RawDataMutation) DeactivatedAt() (r time.Time, exists bool) {
	v := m.deactivated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeactivatedAt returns the old "deactivated_at" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldDeactivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeactivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeactivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeactivatedAt: %w", err)
	}
	return oldValue.DeactivatedAt, nil
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (m *RawDataMutation) ClearDeactivatedAt() {
	m.deactivated_at = nil
	m.clearedFields[rawdata.FieldDeactivatedAt] = struct{}{}
}

// DeactivatedAtCleared returns if the "deactivated_at" field was cleared in this mutation.
func (m *RawDataMutation) DeactivatedAtCleared() bool {
	_, ok := m.clearedFields[rawdata.FieldDeactivatedAt]
	return ok
}

// ResetDeactivatedAt resets all changes to the "deactivated_at" field.
func (m *RawDataMutation) ResetDeactivatedAt() {
	m.deactivated_at = nil
	delete(m.clearedFields, rawdata.FieldDeactivatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RawDataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawDataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawDataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RawDataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RawDataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RawData entity.
// If the RawData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawDataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RawDataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *RawDataMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *RawDataMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *RawDataMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *RawDataMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *RawDataMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *RawDataMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *RawDataMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the RawDataMutation builder.
func (m *RawDataMutation) Where(ps ...predicate.RawData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawData).
func (m *RawDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawDataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project_id != nil {
		fields = append(fields, rawdata.FieldProjectID)
	}
	if m.filepath != nil {
		fields = append(fields, rawdata.FieldFilepath)
	}
	if m.original_filename != nil {
		fields = append(fields, rawdata.FieldOriginalFilename)
	}
	if m.is_active != nil {
		fields = append(fields, rawdata.FieldIsActive)
	}
	if m.is_initial_processing_completed != nil {
		fields = append(fields, rawdata.FieldIsInitialProcessingCompleted)
	}
	if m.deactivated_at != nil {
		fields = append(fields, rawdata.FieldDeactivatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, rawdata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rawdata.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawdata.FieldProjectID:
		return m.ProjectID()
	case rawdata.FieldFilepath:
		return m.Filepath()
	case rawdata.FieldOriginalFilename:
		return m.OriginalFilename()
	case rawdata.FieldIsActive:
		return m.IsActive()
	case rawdata.FieldIsInitialProcessingCompleted:
		return m.IsInitialProcessingCompleted()
	case rawdata.FieldDeactivatedAt:
		return m.DeactivatedAt()
	case rawdata.FieldCreatedAt:
		return m.CreatedAt()
	case rawdata.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawdata.FieldProjectID:
		return m.OldProjectID(ctx)
	case rawdata.FieldFilepath:
		return m.OldFilepath(ctx)
	case rawdata.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case rawdata.FieldIsActive:
		return m.OldIsActive(ctx)
	case rawdata.FieldIsInitialProcessingCompleted:
		return m.OldIsInitialProcessingCompleted(ctx)
	case rawdata.FieldDeactivatedAt:
		return m.OldDeactivatedAt(ctx)
	case rawdata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rawdata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawdata.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case rawdata.FieldFilepath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilepath(v)
		return nil
	case rawdata.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case rawdata.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case rawdata.FieldIsInitialProcessingCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInitialProcessingCompleted(v)
		return nil
	case rawdata.FieldDeactivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeactivatedAt(v)
		return nil
	case rawdata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rawdata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawDataMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawDataMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RawData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawDataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawdata.FieldDeactivatedAt) {
		fields = append(fields, rawdata.FieldDeactivatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawDataMutation) ClearField(name string) error {
	switch name {
	case rawdata.FieldDeactivatedAt:
		m.ClearDeactivatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawDataMutation) ResetField(name string) error {
	switch name {
	case rawdata.FieldProjectID:
		m.ResetProjectID()
		return nil
	case rawdata.FieldFilepath:
		m.ResetFilepath()
		return nil
	case rawdata.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case rawdata.FieldIsActive:
		m.ResetIsActive()
		return nil
	case rawdata.FieldIsInitialProcessingCompleted:
		m.ResetIsInitialProcessingCompleted()
		return nil
	case rawdata.FieldDeactivatedAt:
		m.ResetDeactivatedAt()
		return nil
	case rawdata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rawdata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, rawdata.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rawdata.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, rawdata.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawDataMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rawdata.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, rawdata.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawDataMutation) EdgeCleared(name string) bool {
	switch name {
	case rawdata.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawDataMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RawData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawDataMutation) ResetEdge(name string) error {
	switch name {
	case rawdata.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown RawData edge %s", name)
}

// VectorFeatureMutation represents an operation that mutates the VectorFeature nodes in the graph.
type VectorFeatureMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	project_id        *uuid.UUID
	layer_name        *string
	original_filename *string
	geometry_type     *string
	geometry          *json.RawMessage
	appendgeometry    json.RawMessage
	properties        *json.RawMessage
	appendproperties  json.RawMessage
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*VectorFeature, error)
	predicates        []predicate.VectorFeature
}

var _ ent.Mutation = (*VectorFeatureMutation)(nil)

// vectorfeatureOption allows management of the mutation configuration using functional options.
type vectorfeatureOption func(*VectorFeatureMutation)

// newVectorFeatureMutation creates new mutation for the VectorFeature entity.
func newVectorFeatureMutation(c config, op Op, opts ...vectorfeatureOption) *VectorFeatureMutation {
	m := &VectorFeatureMutation{
		config:        c,
		op:            op,
		typ:           TypeVectorFeature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVectorFeatureID sets the ID field of the mutation.
func withVectorFeatureID(id uuid.UUID) vectorfeatureOption {
	return func(m *VectorFeatureMutation) {
		var (
			err   error
			once  sync.Once
			value *VectorFeature
		)
		m.oldValue = func(ctx context.Context) (*VectorFeature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VectorFeature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVectorFeature sets the old VectorFeature of the mutation.
func withVectorFeature(node *VectorFeature) vectorfeatureOption {
	return func(m *VectorFeatureMutation) {
		m.oldValue = func(context.Context) (*VectorFeature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VectorFeatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VectorFeatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VectorFeature entities.
func (m *VectorFeatureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VectorFeatureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VectorFeatureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VectorFeature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *VectorFeatureMutation) SetProjectID(u uuid.UUID) {
	m.project_id = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *VectorFeatureMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *VectorFeatureMutation) ResetProjectID() {
	m.project_id = nil
}

// SetLayerName sets the "layer_name" field.
func (m *VectorFeatureMutation) SetLayerName(s string) {
	m.layer_name = &s
}

// LayerName returns the value of the "layer_name" field in the mutation.
func (m *VectorFeatureMutation) LayerName() (r string, exists bool) {
	v := m.layer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLayerName returns the old "layer_name" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldLayerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayerName: %w", err)
	}
	return oldValue.LayerName, nil
}

// ResetLayerName resets all changes to the "layer_name" field.
func (m *VectorFeatureMutation) ResetLayerName() {
	m.layer_name = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *VectorFeatureMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *VectorFeatureMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *VectorFeatureMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[vectorfeature.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *VectorFeatureMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[vectorfeature.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *VectorFeatureMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, vectorfeature.FieldOriginalFilename)
}

// SetGeometryType sets the "geometry_type" field.
func (m *VectorFeatureMutation) SetGeometryType(s string) {
	m.geometry_type = &s
}

// GeometryType returns the value of the "geometry_type" field in the mutation.
func (m *VectorFeatureMutation) GeometryType() (r string, exists bool) {
	v := m.geometry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGeometryType returns the old "geometry_type" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldGeometryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeometryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeometryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeometryType: %w", err)
	}
	return oldValue.GeometryType, nil
}

// ResetGeometryType resets all changes to the "geometry_type" field.
func (m *VectorFeatureMutation) ResetGeometryType() {
	m.geometry_type = nil
}

// SetGeometry sets the "geometry" field.
func (m *VectorFeatureMutation) SetGeometry(jm json.RawMessage) {
	m.geometry = &jm
	m.appendgeometry = nil
}

// Geometry returns the value of the "geometry" field in the mutation.
func (m *VectorFeatureMutation) Geometry() (r json.RawMessage, exists bool) {
	v := m.geometry
	if v == nil {
		return
	}
	return *v, true
}

// OldGeometry returns the old "geometry" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldGeometry(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeometry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeometry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeometry: %w", err)
	}
	return oldValue.Geometry, nil
}

// AppendGeometry adds jm to the "geometry" field.
func (m *VectorFeatureMutation) AppendGeometry(jm json.RawMessage) {
	m.appendgeometry = append(m.appendgeometry, jm...)
}

// AppendedGeometry returns the list of values that were appended to the "geometry" field in this mutation.
func (m *VectorFeatureMutation) AppendedGeometry() (json.RawMessage, bool) {
	if len(m.appendgeometry) == 0 {
		return nil, false
	}
	return m.appendgeometry, true
}

// ResetGeometry resets all changes to the "geometry" field.
func (m *VectorFeatureMutation) ResetGeometry() {
	m.geometry = nil
	m.appendgeometry = nil
}

// SetProperties sets the "properties" field.
func (m *VectorFeatureMutation) SetProperties(jm json.RawMessage) {
	m.properties = &jm
	m.appendproperties = nil
}

// Properties returns the value of the "properties" field in the mutation.
func (m *VectorFeatureMutation) Properties() (r json.RawMessage, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the VectorFeature entity.
// If the VectorFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VectorFeatureMutation) OldProperties(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// AppendProperties adds jm to the "properties" field.
func (m *VectorFeatureMutation) AppendProperties(jm json.RawMessage) {
	m.appendproperties = append(m.appendproperties, jm...)
}

// AppendedProperties returns the list of values that were appended to the "properties" field in this mutation.
func (m *VectorFeatureMutation) AppendedProperties() (json.RawMessage, bool) {
	if len(m.appendproperties) == 0 {
		return nil, false
	}
	return m.appendproperties, true
}

// ClearProperties clears the value of the "properties" field.
func (m *VectorFeatureMutation) ClearProperties() {
	m.properties = nil
	m.appendproperties = nil
	m.clearedFields[vectorfeature.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *VectorFeatureMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[vectorfeature.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *VectorFeatureMutation) ResetProperties() {
	m.properties = nil
	m.appendproperties = nil
	delete(m.clearedFields, vectorfeature.FieldProperties)
}

// Where appends a list predicates to the VectorFeatureMutation builder.
func (m *VectorFeatureMutation) Where(ps ...predicate.VectorFeature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VectorFeatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VectorFeatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VectorFeature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VectorFeatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VectorFeatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VectorFeature).
func (m *VectorFeatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VectorFeatureMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project_id != nil {
		fields = append(fields, vectorfeature.FieldProjectID)
	}
	if m.layer_name != nil {
		fields = append(fields, vectorfeature.FieldLayerName)
	}
	if m.original_filename != nil {
		fields = append(fields, vectorfeature.FieldOriginalFilename)
	}
	if m.geometry_type != nil {
		fields = append(fields, vectorfeature.FieldGeometryType)
	}
	if m.geometry != nil {
		fields = append(fields, vectorfeature.FieldGeometry)
	}
	if m.properties != nil {
		fields = append(fields, vectorfeature.FieldProperties)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VectorFeatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vectorfeature.FieldProjectID:
		return m.ProjectID()
	case vectorfeature.FieldLayerName:
		return m.LayerName()
	case vectorfeature.FieldOriginalFilename:
		return m.OriginalFilename()
	case vectorfeature.FieldGeometryType:
		return m.GeometryType()
	case vectorfeature.FieldGeometry:
		return m.Geometry()
	case vectorfeature.FieldProperties:
		return m.Properties()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VectorFeatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vectorfeature.FieldProjectID:
		return m.OldProjectID(ctx)
	case vectorfeature.FieldLayerName:
		return m.OldLayerName(ctx)
	case vectorfeature.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case vectorfeature.FieldGeometryType:
		return m.OldGeometryType(ctx)
	case vectorfeature.FieldGeometry:
		return m.OldGeometry(ctx)
	case vectorfeature.FieldProperties:
		return m.OldProperties(ctx)
	}
	return nil, fmt.Errorf("unknown VectorFeature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorFeatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vectorfeature.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case vectorfeature.FieldLayerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayerName(v)
		return nil
	case vectorfeature.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case vectorfeature.FieldGeometryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeometryType(v)
		return nil
	case vectorfeature.FieldGeometry:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeometry(v)
		return nil
	case vectorfeature.FieldProperties:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	}
	return fmt.Errorf("unknown VectorFeature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VectorFeatureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VectorFeatureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VectorFeatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VectorFeature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VectorFeatureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vectorfeature.FieldOriginalFilename) {
		fields = append(fields, vectorfeature.FieldOriginalFilename)
	}
	if m.FieldCleared(vectorfeature.FieldProperties) {
		fields = append(fields, vectorfeature.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VectorFeatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VectorFeatureMutation) ClearField(name string) error {
	switch name {
	case vectorfeature.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case vectorfeature.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown VectorFeature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VectorFeatureMutation) ResetField(name string) error {
	switch name {
	case vectorfeature.FieldProjectID:
		m.ResetProjectID()
		return nil
	case vectorfeature.FieldLayerName:
		m.ResetLayerName()
		return nil
	case vectorfeature.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case vectorfeature.FieldGeometryType:
		m.ResetGeometryType()
		return nil
	case vectorfeature.FieldGeometry:
		m.ResetGeometry()
		return nil
	case vectorfeature.FieldProperties:
		m.ResetProperties()
		return nil
	}
	return fmt.Errorf("unknown VectorFeature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VectorFeatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VectorFeatureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VectorFeatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VectorFeatureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VectorFeatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VectorFeatureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VectorFeatureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VectorFeature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VectorFeatureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VectorFeature edge %s", name)
}
