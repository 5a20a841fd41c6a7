package auth

// Role of an admin account.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
)

// Permission names one switch of the permission map.
type Permission string

const (
	PermViewFacilities    Permission = "can_view_facilities"
	PermManageFacilities  Permission = "can_manage_facilities"
	PermViewFields        Permission = "can_view_fields"
	PermManageFields      Permission = "can_manage_fields"
	PermApproveBookings   Permission = "can_approve_bookings"
	PermCancelBookings    Permission = "can_cancel_bookings"
	PermDeleteBookings    Permission = "can_delete_bookings"
	PermArchiveBookings   Permission = "can_archive_bookings"
	PermManageSubscribers Permission = "can_manage_subscribers"
	PermManageGallery     Permission = "can_manage_gallery"
	PermViewMessages      Permission = "can_view_messages"
)

// Permissions is the permission map stored with every admin account.
type Permissions struct {
	CanViewFacilities    bool `json:"can_view_facilities"`
	CanManageFacilities  bool `json:"can_manage_facilities"`
	CanViewFields        bool `json:"can_view_fields"`
	CanManageFields      bool `json:"can_manage_fields"`
	CanApproveBookings   bool `json:"can_approve_bookings"`
	CanCancelBookings    bool `json:"can_cancel_bookings"`
	CanDeleteBookings    bool `json:"can_delete_bookings"`
	CanArchiveBookings   bool `json:"can_archive_bookings"`
	CanManageSubscribers bool `json:"can_manage_subscribers"`
	CanManageGallery     bool `json:"can_manage_gallery"`
	CanViewMessages      bool `json:"can_view_messages"`
}

// DefaultPermissions are granted to a new admin when none are given.
var DefaultPermissions = Permissions{
	CanViewFacilities:  true,
	CanViewFields:      true,
	CanApproveBookings: true,
	CanCancelBookings:  true,
	CanArchiveBookings: true,
	CanManageGallery:   true,
}

// SuperAdminPermissions has every switch on.
var SuperAdminPermissions = Permissions{
	CanViewFacilities:    true,
	CanManageFacilities:  true,
	CanViewFields:        true,
	CanManageFields:      true,
	CanApproveBookings:   true,
	CanCancelBookings:    true,
	CanDeleteBookings:    true,
	CanArchiveBookings:   true,
	CanManageSubscribers: true,
	CanManageGallery:     true,
	CanViewMessages:      true,
}

// PermissionLabels are the Turkish names shown in the admin panel.
var PermissionLabels = map[Permission]string{
	PermViewFacilities:    "Tesisleri Görüntüle",
	PermManageFacilities:  "Tesis Ekle/Düzenle/Sil",
	PermViewFields:        "Sahaları Görüntüle",
	PermManageFields:      "Saha Ekle/Düzenle/Sil",
	PermApproveBookings:   "Rezervasyon Onayla",
	PermCancelBookings:    "Rezervasyon İptal Et",
	PermDeleteBookings:    "Rezervasyon Sil",
	PermArchiveBookings:   "Rezervasyon Arşivle",
	PermManageSubscribers: "Aboneleri Yönet",
	PermManageGallery:     "Galeriyi Yönet",
	PermViewMessages:      "İletişim Mesajlarını Gör",
}

// Has reports whether the named switch is on. Unknown names are denied.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case PermViewFacilities:
		return p.CanViewFacilities
	case PermManageFacilities:
		return p.CanManageFacilities
	case PermViewFields:
		return p.CanViewFields
	case PermManageFields:
		return p.CanManageFields
	case PermApproveBookings:
		return p.CanApproveBookings
	case PermCancelBookings:
		return p.CanCancelBookings
	case PermDeleteBookings:
		return p.CanDeleteBookings
	case PermArchiveBookings:
		return p.CanArchiveBookings
	case PermManageSubscribers:
		return p.CanManageSubscribers
	case PermManageGallery:
		return p.CanManageGallery
	case PermViewMessages:
		return p.CanViewMessages
	default:
		return false
	}
}

// EffectivePermissions resolves what an account may do. Super admins always get
// everything regardless of what is stored for them.
func EffectivePermissions(role Role, stored Permissions) Permissions {
	if role == RoleSuperAdmin {
		return SuperAdminPermissions
	}
	return stored
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
