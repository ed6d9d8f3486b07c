package seeders

import (
	"errors"
	"log"

	"port-pass/constants"
	"port-pass/services/storage"
	staffTypes "port-pass/types/staff"
)

// SeedDefaultAdmin bootstraps exactly one administrator account on first start.
// The count guard makes re-running against a durable store a no-op, so restarts
// never create a second default admin.
func SeedDefaultAdmin(store storage.Storage) error {
	log.Printf("🔍 Checking for existing staff records...")

	count, err := store.CountStaff()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("✅ Staff records present, skipping default admin seed")
		return nil
	}

	isActive := true
	_, err = store.CreateStaff(staffTypes.CreateStaffRequest{
		Username:    constants.DefaultAdminUsername,
		Password:    constants.DefaultAdminPassword,
		FullName:    constants.DefaultAdminFullName,
		Designation: constants.DefaultAdminDesignation,
		Department:  constants.DefaultAdminDepartment,
		IsAdmin:     true,
		IsActive:    &isActive,
	})
	if err != nil {
		// Another instance seeded between the count and the insert.
		if errors.Is(err, storage.ErrDuplicateKey) {
			log.Printf("✅ Default admin already seeded by another instance")
			return nil
		}
		return err
	}

	log.Printf("✅ Default admin account seeded")
	return nil
}
