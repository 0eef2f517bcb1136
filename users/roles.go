package users

// RoleType is a department role name.
type RoleType string

const (
	RoleDepartmentHead     RoleType = "department_head"
	RoleCommitteeMember    RoleType = "committee_member"
	RoleTrainer            RoleType = "trainer"
	RoleScheduleSupervisor RoleType = "schedule_supervisor"
	RoleTraineeSupervisor  RoleType = "trainee_supervisor"
	RoleQualityCommittee   RoleType = "quality_committee"
	RoleAcademicGuidance   RoleType = "academic_guidance"
	RoleTalentCommittee    RoleType = "talent_committee"
	RoleSafetyCommittee    RoleType = "safety_committee"
)

// Permission is a named capability granted directly or through a role.
type Permission string

const (
	PermManageUsers           Permission = "manage_users"
	PermViewUsers             Permission = "view_users"
	PermGenerateReports       Permission = "generate_reports"
	PermViewReports           Permission = "view_reports"
	PermManageInitiatives     Permission = "manage_initiatives"
	PermViewInitiatives       Permission = "view_initiatives"
	PermManageTraineeBehavior Permission = "manage_trainee_behavior"
	PermViewTraineeBehavior   Permission = "view_trainee_behavior"
	PermManageQuality         Permission = "manage_quality"
	PermViewQuality           Permission = "view_quality"
	PermManageSchedules       Permission = "manage_schedules"
	PermViewSchedules         Permission = "view_schedules"
	PermManageTrainees        Permission = "manage_trainees"
	PermViewTrainees          Permission = "view_trainees"
	PermManageSurveys         Permission = "manage_surveys"
	PermViewSurveys           Permission = "view_surveys"
)

// AllPermissions lists every known permission in declaration order.
var AllPermissions = []Permission{
	PermManageUsers, PermViewUsers,
	PermGenerateReports, PermViewReports,
	PermManageInitiatives, PermViewInitiatives,
	PermManageTraineeBehavior, PermViewTraineeBehavior,
	PermManageQuality, PermViewQuality,
	PermManageSchedules, PermViewSchedules,
	PermManageTrainees, PermViewTrainees,
	PermManageSurveys, PermViewSurveys,
}

// DefaultRolePermissions is the role grant table the department API seeds on
// first start. Roles missing from the table grant nothing.
var DefaultRolePermissions = map[RoleType][]Permission{
	RoleDepartmentHead: AllPermissions,
	RoleQualityCommittee: {
		PermManageQuality, PermViewQuality,
		PermGenerateReports, PermViewReports,
		PermViewTrainees, PermViewSurveys,
	},
	RoleAcademicGuidance: {
		PermManageTraineeBehavior, PermViewTraineeBehavior,
		PermManageTrainees, PermViewTrainees,
		PermViewReports,
	},
	RoleTalentCommittee: {
		PermViewTrainees,
		PermManageInitiatives, PermViewInitiatives,
		PermViewReports,
	},
	RoleTrainer: {
		PermViewTrainees,
		PermManageTraineeBehavior, PermViewTraineeBehavior,
		PermViewSchedules, PermViewSurveys,
	},
	RoleScheduleSupervisor: {
		PermManageSchedules, PermViewSchedules,
		PermViewTrainees, PermViewReports,
	},
	RoleTraineeSupervisor: {
		PermManageTrainees, PermViewTrainees,
		PermManageTraineeBehavior, PermViewTraineeBehavior,
		PermViewReports,
	},
}

// PermissionsForRoles returns the de-duplicated union of the grants of roles.
func PermissionsForRoles(roles []string) []string {
	seen := make(map[Permission]struct{})
	perms := make([]string, 0)
	for _, role := range roles {
		for _, p := range DefaultRolePermissions[RoleType(role)] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, string(p))
		}
	}
	return perms
}
