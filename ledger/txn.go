// Package ledger addresses protocol records in the chaincode world state and
// buffers a transaction's writes so they reach the stub only on Commit.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightcover/errcode"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("flightcover.ledger")

type pendingWrite struct {
	value   []byte
	deleted bool
}

type pendingEvent struct {
	name    string
	payload []byte
}

// Txn is a write-buffered view over the stub. Reads see the transaction's own
// pending writes; nothing is written to the stub until Commit.
type Txn struct {
	stub      shim.ChaincodeStubInterface
	writes    map[string]*pendingWrite
	order     []string
	event     *pendingEvent
	committed bool
}

// Begin opens a Txn over stub.
func Begin(stub shim.ChaincodeStubInterface) *Txn {
	return &Txn{stub: stub, writes: make(map[string]*pendingWrite)}
}

// Stub returns the underlying chaincode stub.
func (t *Txn) Stub() shim.ChaincodeStubInterface {
	return t.stub
}

// Key builds the composite key for a record.
func (t *Txn) Key(objectType string, attrs ...string) (string, error) {
	for _, a := range attrs {
		if strings.TrimSpace(a) == "" {
			return "", errcode.New(errcode.InvalidArgument, "%s key attribute cannot be empty", objectType)
		}
	}
	key, err := t.stub.CreateCompositeKey(objectType, attrs)
	if err != nil {
		return "", fmt.Errorf("failed to create composite key for %s: %w", objectType, err)
	}
	return key, nil
}

// Timestamp returns the transaction timestamp agreed by all endorsers.
func (t *Txn) Timestamp() (time.Time, error) {
	ts, err := t.stub.GetTxTimestamp()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}
	return ts.AsTime(), nil
}

func (t *Txn) raw(key string) ([]byte, error) {
	if w, ok := t.writes[key]; ok {
		if w.deleted {
			return nil, nil
		}
		return w.value, nil
	}
	b, err := t.stub.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s' from ledger: %w", PrintableKey(key), err)
	}
	return b, nil
}

// Exists reports whether a record is present at key.
func (t *Txn) Exists(key string) (bool, error) {
	b, err := t.raw(key)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// Get unmarshals the record at key into out. A missing record yields RecordNotFound.
func (t *Txn) Get(key string, out interface{}) error {
	b, err := t.raw(key)
	if err != nil {
		return err
	}
	if b == nil {
		return errcode.New(errcode.RecordNotFound, "record '%s' does not exist", PrintableKey(key))
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to unmarshal record '%s': %w", PrintableKey(key), err)
	}
	return nil
}

// Create writes v at key, failing with RecordExists if the key is taken.
func (t *Txn) Create(key string, v interface{}) error {
	exists, err := t.Exists(key)
	if err != nil {
		return err
	}
	if exists {
		return errcode.New(errcode.RecordExists, "record '%s' already exists", PrintableKey(key))
	}
	return t.Put(key, v)
}

// Put stages v at key.
func (t *Txn) Put(key string, v interface{}) error {
	if t.committed {
		return errors.New("transaction already committed")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record '%s': %w", PrintableKey(key), err)
	}
	t.stage(key, &pendingWrite{value: b})
	return nil
}

// PutRaw stages raw bytes at key. Used for index entries.
func (t *Txn) PutRaw(key string, value []byte) error {
	if t.committed {
		return errors.New("transaction already committed")
	}
	t.stage(key, &pendingWrite{value: value})
	return nil
}

// Delete stages removal of key.
func (t *Txn) Delete(key string) error {
	if t.committed {
		return errors.New("transaction already committed")
	}
	t.stage(key, &pendingWrite{deleted: true})
	return nil
}

func (t *Txn) stage(key string, w *pendingWrite) {
	if _, seen := t.writes[key]; !seen {
		t.order = append(t.order, key)
	}
	t.writes[key] = w
}

// SetEvent stages the transaction's chaincode event. Fabric keeps one event
// per transaction, so a later call replaces an earlier one.
func (t *Txn) SetEvent(name string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event '%s': %w", name, err)
	}
	if t.event != nil {
		logger.Warningf("Event '%s' replaces previously staged event '%s'", name, t.event.name)
	}
	t.event = &pendingEvent{name: name, payload: b}
	return nil
}

// Pending reports the number of staged writes.
func (t *Txn) Pending() int {
	return len(t.order)
}

// Commit flushes staged writes in staging order, then the event.
func (t *Txn) Commit() error {
	if t.committed {
		return errors.New("transaction already committed")
	}
	for _, key := range t.order {
		w := t.writes[key]
		if w.deleted {
			if err := t.stub.DelState(key); err != nil {
				return fmt.Errorf("failed to delete '%s': %w", PrintableKey(key), err)
			}
			continue
		}
		if err := t.stub.PutState(key, w.value); err != nil {
			return fmt.Errorf("failed to write '%s': %w", PrintableKey(key), err)
		}
	}
	if t.event != nil {
		if err := t.stub.SetEvent(t.event.name, t.event.payload); err != nil {
			return fmt.Errorf("failed to set event '%s': %w", t.event.name, err)
		}
	}
	t.committed = true
	logger.Debugf("Committed %d writes for tx %s", len(t.order), t.stub.GetTxID())
	return nil
}

// PrintableKey renders a composite key with '/' separators for messages.
func PrintableKey(key string) string {
	return strings.Trim(strings.ReplaceAll(key, "\x00", "/"), "/")
}
