package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"port-pass/services/credential"
	passTypes "port-pass/types/pass"
	staffTypes "port-pass/types/staff"
	txTypes "port-pass/types/transaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage() *MemoryStorage {
	return NewMemoryStorage(credential.NewCredentialService())
}

func transactionRequest(payer string) txTypes.CreateTransactionRequest {
	return txTypes.CreateTransactionRequest{
		PayerName:    payer,
		TotalAmount:  "23.43",
		SlipFilename: "slip-001.jpg",
	}
}

func passRequest(txID, passNumber, passType, amount string) passTypes.CreatePassRequest {
	req := passTypes.CreatePassRequest{
		TransactionID: txID,
		StaffID:       "staff-1",
		CustomerName:  "Jamal Uddin",
		PassType:      passType,
		ValidDate:     "2024-01-15",
		PassNumber:    passNumber,
		Amount:        amount,
		QRCode:        "qr-payload-" + passNumber,
	}
	switch passType {
	case "daily":
		id := "NID-1234567890"
		req.IDNumber = &id
	default:
		plate := "DHK-METRO-GA-1122"
		req.PlateNumber = &plate
	}
	return req
}

func staffRequest(username string) staffTypes.CreateStaffRequest {
	return staffTypes.CreateStaffRequest{
		Username:    username,
		Password:    "secret123",
		FullName:    "Port Operator",
		Designation: "Gate Operator",
		Department:  "Operations",
	}
}

func TestCreateTransactionGeneratesUniqueIDs(t *testing.T) {
	store := newTestStorage()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		tx, err := store.CreateTransaction(transactionRequest(fmt.Sprintf("Payer %d", i)))
		require.NoError(t, err)
		assert.False(t, seen[tx.ID], "duplicate transaction id %s", tx.ID)
		seen[tx.ID] = true
		assert.False(t, tx.CreatedAt.IsZero())
	}
}

func TestCreateTransactionRejectsNegativeAmount(t *testing.T) {
	store := newTestStorage()

	req := transactionRequest("Payer")
	req.TotalAmount = "-5.00"
	_, err := store.CreateTransaction(req)
	assert.ErrorIs(t, err, ErrValidationFailure)

	req.TotalAmount = "not-a-number"
	_, err = store.CreateTransaction(req)
	assert.ErrorIs(t, err, ErrValidationFailure)
}

func TestGetTransactionByID(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateTransaction(transactionRequest("Karim"))
	require.NoError(t, err)

	found, err := store.GetTransactionByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Karim", found.PayerName)
	assert.Equal(t, "23.43", found.TotalAmount())

	_, err = store.GetTransactionByID("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePassRequiresExistingTransaction(t *testing.T) {
	store := newTestStorage()

	_, err := store.CreatePass(passRequest("missing-tx", "PP-0001", "daily", "6.11"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePassRejectsDuplicatePassNumber(t *testing.T) {
	store := newTestStorage()

	tx, err := store.CreateTransaction(transactionRequest("Payer"))
	require.NoError(t, err)

	_, err = store.CreatePass(passRequest(tx.ID, "PP-0001", "daily", "6.11"))
	require.NoError(t, err)

	_, err = store.CreatePass(passRequest(tx.ID, "PP-0001", "vehicle", "11.21"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCreatePassValidation(t *testing.T) {
	store := newTestStorage()

	tx, err := store.CreateTransaction(transactionRequest("Payer"))
	require.NoError(t, err)

	// Unknown pass type
	req := passRequest(tx.ID, "PP-0002", "daily", "6.11")
	req.PassType = "weekly"
	_, err = store.CreatePass(req)
	assert.ErrorIs(t, err, ErrValidationFailure)

	// Daily pass without an ID number
	req = passRequest(tx.ID, "PP-0003", "daily", "6.11")
	req.IDNumber = nil
	_, err = store.CreatePass(req)
	assert.ErrorIs(t, err, ErrValidationFailure)

	// Vehicle pass without a plate number
	req = passRequest(tx.ID, "PP-0004", "vehicle", "11.21")
	req.PlateNumber = nil
	_, err = store.CreatePass(req)
	assert.ErrorIs(t, err, ErrValidationFailure)

	// Negative amount
	_, err = store.CreatePass(passRequest(tx.ID, "PP-0005", "daily", "-6.11"))
	assert.ErrorIs(t, err, ErrValidationFailure)
}

func TestGetPassesByTransactionIsolation(t *testing.T) {
	store := newTestStorage()

	tx1, err := store.CreateTransaction(transactionRequest("Payer One"))
	require.NoError(t, err)
	tx2, err := store.CreateTransaction(transactionRequest("Payer Two"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = store.CreatePass(passRequest(tx1.ID, fmt.Sprintf("A-%d", i), "daily", "6.11"))
		require.NoError(t, err)
	}
	_, err = store.CreatePass(passRequest(tx2.ID, "B-0", "vehicle", "11.21"))
	require.NoError(t, err)

	passes, err := store.GetPassesByTransaction(tx1.ID)
	require.NoError(t, err)
	require.Len(t, passes, 3)
	for i, p := range passes {
		assert.Equal(t, fmt.Sprintf("A-%d", i), p.PassNumber, "creation order must be preserved")
		assert.Equal(t, tx1.ID, p.TransactionID)
	}

	passes, err = store.GetPassesByTransaction("missing-tx")
	require.NoError(t, err)
	assert.Empty(t, passes)
}

func TestGetRecentPassesOrdering(t *testing.T) {
	store := newTestStorage()

	tx, err := store.CreateTransaction(transactionRequest("Payer"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = store.CreatePass(passRequest(tx.ID, fmt.Sprintf("PP-%d", i), "daily", "6.11"))
		require.NoError(t, err)
	}

	recent, err := store.GetRecentPasses(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "PP-4", recent[0].PassNumber)
	assert.Equal(t, "PP-3", recent[1].PassNumber)
	assert.Equal(t, "PP-2", recent[2].PassNumber)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i-1].CreatedAt.Before(recent[i].CreatedAt))
	}

	// Requesting more than exist returns all of them.
	all, err := store.GetRecentPasses(100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := store.GetRecentPasses(0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPassesByDate(t *testing.T) {
	store := newTestStorage()

	tx, err := store.CreateTransaction(transactionRequest("Payer"))
	require.NoError(t, err)

	_, err = store.CreatePass(passRequest(tx.ID, "PP-1", "daily", "6.11"))
	require.NoError(t, err)
	_, err = store.CreatePass(passRequest(tx.ID, "PP-2", "vehicle", "11.21"))
	require.NoError(t, err)

	today, err := store.GetPassesByDate(time.Now())
	require.NoError(t, err)
	assert.Len(t, today, 2)
	assert.Equal(t, "PP-1", today[0].PassNumber)

	yesterday, err := store.GetPassesByDate(time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, yesterday)
}

func TestCreateStaffHashesPassword(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.True(t, created.IsActive, "isActive must default to true")
	assert.False(t, created.IsAdmin)
	assert.True(t, store.credentials.Verify("secret123", created.PasswordHash))
}

func TestCreateStaffRejectsDuplicateUsername(t *testing.T) {
	store := newTestStorage()

	_, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	_, err = store.CreateStaff(staffRequest("operator1"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGetStaffLookups(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	byID, err := store.GetStaffByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "operator1", byID.Username)

	byName, err := store.GetStaffByUsername("operator1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	// Usernames are case-sensitive.
	_, err = store.GetStaffByUsername("Operator1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetStaffByID("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllStaffPreservesInsertionOrder(t *testing.T) {
	store := newTestStorage()

	names := []string{"alpha", "bravo", "charlie"}
	for _, name := range names {
		_, err := store.CreateStaff(staffRequest(name))
		require.NoError(t, err)
	}

	all, err := store.GetAllStaff()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, s := range all {
		assert.Equal(t, names[i], s.Username)
	}
}

func TestUpdateStaffPartialUpdate(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	inactive := false
	updated, err := store.UpdateStaff(created.ID, staffTypes.UpdateStaffRequest{IsActive: &inactive})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash, "hash must be preserved when no password supplied")
	assert.Equal(t, created.Username, updated.Username)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updatedAt must never regress")
}

func TestUpdateStaffRehashesNewPassword(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	newPassword := "changed456"
	updated, err := store.UpdateStaff(created.ID, staffTypes.UpdateStaffRequest{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, store.credentials.Verify("changed456", updated.PasswordHash))
	assert.False(t, store.credentials.Verify("secret123", updated.PasswordHash))
}

func TestUpdateStaffErrors(t *testing.T) {
	store := newTestStorage()

	name := "anything"
	_, err := store.UpdateStaff("missing-id", staffTypes.UpdateStaffRequest{FullName: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)
	_, err = store.CreateStaff(staffRequest("operator2"))
	require.NoError(t, err)

	taken := "operator2"
	_, err = store.UpdateStaff(first.ID, staffTypes.UpdateStaffRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDeleteStaffIsIdempotent(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	removed, err := store.DeleteStaff(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = store.GetStaffByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = store.DeleteStaff(created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete must be a no-op")
}

func TestCountStaff(t *testing.T) {
	store := newTestStorage()

	count, err := store.CountStaff()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	count, err = store.CountStaff()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := newTestStorage()

	created, err := store.CreateStaff(staffRequest("operator1"))
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store.
	created.Username = "tampered"
	fresh, err := store.GetStaffByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "operator1", fresh.Username)
}

func TestReturnedPointerFieldsAreCopies(t *testing.T) {
	store := newTestStorage()

	email := "payer@example.com"
	txReq := transactionRequest("Payer")
	txReq.PayerEmail = &email
	tx, err := store.CreateTransaction(txReq)
	require.NoError(t, err)

	// Writing through the returned pointers must not reach canonical state.
	*tx.PayerEmail = "tampered@example.com"
	freshTx, err := store.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, freshTx.PayerEmail)
	assert.Equal(t, "payer@example.com", *freshTx.PayerEmail)

	createdPass, err := store.CreatePass(passRequest(tx.ID, "PP-0001", "daily", "6.11"))
	require.NoError(t, err)
	require.NotNil(t, createdPass.IDNumber)
	*createdPass.IDNumber = "tampered"

	passes, err := store.GetPassesByTransaction(tx.ID)
	require.NoError(t, err)
	require.Len(t, passes, 1)
	require.NotNil(t, passes[0].IDNumber)
	assert.Equal(t, "NID-1234567890", *passes[0].IDNumber)

	// Read paths must hand out fresh pointers as well.
	*passes[0].IDNumber = "tampered-again"
	recent, err := store.GetRecentPasses(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "NID-1234567890", *recent[0].IDNumber)
}

func TestConcurrentPassCreation(t *testing.T) {
	store := newTestStorage()

	tx, err := store.CreateTransaction(transactionRequest("Payer"))
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := store.CreatePass(passRequest(tx.ID, fmt.Sprintf("PP-%02d", n), "daily", "6.11"))
			assert.NoError(t, err)
			_, err = store.GetRecentPasses(5)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	passes, err := store.GetPassesByTransaction(tx.ID)
	require.NoError(t, err)
	assert.Len(t, passes, workers)
}
