package auth

import (
	"clinic-app-server/internal/models"
)

// Permission is a capability a route requires. Routes declare the
// capability, not the role names, so role policy lives in one table.
type Permission string

const (
	PermManageClinics       Permission = "clinics:manage"
	PermManageUsers         Permission = "users:manage"
	PermViewPatients        Permission = "patients:view"
	PermManagePatients      Permission = "patients:manage"
	PermViewSchedule        Permission = "schedule:view"
	PermScheduleAppointment Permission = "schedule:book"
	PermCheckInPatients     Permission = "schedule:checkin"
	PermManageAvailability  Permission = "schedule:availability"
	PermViewRecords         Permission = "records:view"
	PermAttendPatients      Permission = "records:write"
	PermRecordTriage        Permission = "records:triage"
	PermManageInventory     Permission = "inventory:manage"
	PermViewBilling         Permission = "billing:view"
	PermManageProcedures    Permission = "procedures:manage"
)

// rolePermissions maps each role to its capability set. Admins run the
// clinic but do not read clinical records; doctors and nurses do.
var rolePermissions = map[models.Role]map[Permission]bool{
	models.RoleAdmin: {
		PermManageUsers:         true,
		PermViewPatients:        true,
		PermManagePatients:      true,
		PermViewSchedule:        true,
		PermScheduleAppointment: true,
		PermCheckInPatients:     true,
		PermManageAvailability:  true,
		PermManageInventory:     true,
		PermViewBilling:         true,
		PermManageProcedures:    true,
	},
	models.RoleDoctor: {
		PermViewPatients:        true,
		PermViewSchedule:        true,
		PermScheduleAppointment: true,
		PermViewRecords:         true,
		PermAttendPatients:      true,
	},
	models.RoleReception: {
		PermViewPatients:        true,
		PermManagePatients:      true,
		PermViewSchedule:        true,
		PermScheduleAppointment: true,
		PermCheckInPatients:     true,
		PermManageAvailability:  true,
	},
	models.RoleNurse: {
		PermViewPatients: true,
		PermViewSchedule: true,
		PermViewRecords:  true,
		PermRecordTriage: true,
	},
}

// RoleHas reports whether the role carries the permission. Super-admins
// hold every capability.
func RoleHas(role models.Role, perm Permission) bool {
	if role == models.RoleSuperAdmin {
		return true
	}
	return rolePermissions[role][perm]
}
