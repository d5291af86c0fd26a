package models

// SettingsID is the fixed id of the singleton settings document.
const SettingsID = "settings"

// DefaultAdminEmail receives admin alerts when no settings document exists yet.
const DefaultAdminEmail = "info@lakesiderestaurant.com.au"

// AdminUser is the single shared admin identity
type AdminUser struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Email        string `bson:"email" json:"email"`
}

// Settings is the singleton site configuration document
type Settings struct {
	ID                string            `bson:"id" json:"id"`
	AdminEmail        string            `bson:"admin_email" json:"admin_email"`
	RestaurantName    string            `bson:"restaurant_name" json:"restaurant_name"`
	RestaurantPhone   string            `bson:"restaurant_phone" json:"restaurant_phone"`
	RestaurantAddress string            `bson:"restaurant_address" json:"restaurant_address"`
	OpeningHours      map[string]string `bson:"opening_hours" json:"opening_hours"`
	HeaderLogo        string            `bson:"header_logo,omitempty" json:"header_logo,omitempty"`
	FooterLogo        string            `bson:"footer_logo,omitempty" json:"footer_logo,omitempty"`
	SMTPHost          string            `bson:"smtp_host,omitempty" json:"smtp_host,omitempty"`
	SMTPPort          int               `bson:"smtp_port,omitempty" json:"smtp_port,omitempty"`
	SMTPUser          string            `bson:"smtp_user,omitempty" json:"smtp_user,omitempty"`
	SMTPFromEmail     string            `bson:"smtp_from_email,omitempty" json:"smtp_from_email,omitempty"`
	HappyCustomers    int               `bson:"happy_customers" json:"happy_customers"`
	DishesServed      int               `bson:"dishes_served" json:"dishes_served"`
	YearsExperience   int               `bson:"years_experience" json:"years_experience"`
	TeamMembers       int               `bson:"team_members" json:"team_members"`
}

// PublicSettings is the subset of Settings exposed without authentication.
type PublicSettings struct {
	RestaurantName    string            `json:"restaurant_name"`
	RestaurantPhone   string            `json:"restaurant_phone"`
	RestaurantAddress string            `json:"restaurant_address"`
	OpeningHours      map[string]string `json:"opening_hours"`
	HeaderLogo        string            `json:"header_logo,omitempty"`
	FooterLogo        string            `json:"footer_logo,omitempty"`
}

// Public strips the admin-only fields from s.
func (s Settings) Public() PublicSettings {
	return PublicSettings{
		RestaurantName:    s.RestaurantName,
		RestaurantPhone:   s.RestaurantPhone,
		RestaurantAddress: s.RestaurantAddress,
		OpeningHours:      s.OpeningHours,
		HeaderLogo:        s.HeaderLogo,
		FooterLogo:        s.FooterLogo,
	}
}

// DefaultSettings returns the values synthesized when no settings document
// has been written yet.
func DefaultSettings() Settings {
	return Settings{
		ID:                SettingsID,
		AdminEmail:        DefaultAdminEmail,
		RestaurantName:    "Lakeside Indian Restaurant",
		RestaurantPhone:   "+61 3 9749 3400",
		RestaurantAddress: "53 Morang Road, Hawthorn VIC 3122",
		OpeningHours: map[string]string{
			"monday_thursday": "5:00 PM - 10:00 PM",
			"friday_saturday": "5:00 PM - 10:30 PM",
			"sunday":          "5:00 PM - 10:00 PM",
		},
		HappyCustomers:  5000,
		DishesServed:    25000,
		YearsExperience: 15,
		TeamMembers:     30,
	}
}
