package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const (
	SeedOrganizationID      = "org_1"
	SeedOtherOrganizationID = "org_2"
)

func (s *Store) seed(now time.Time) {
	day := 24 * time.Hour

	s.organizations = []entity.Organization{
		{
			ID: "org_1", Name: "Acme Support", Domain: "acme.example", Tier: "enterprise",
			Settings: map[string]any{"timezone": "UTC", "businessHours": "08:00-20:00"},
			Status:   entity.OrganizationStatusActive, RootUserID: "user_1", CreatedAt: now.Add(-90 * day),
		},
		{
			ID: "org_2", Name: "Globex Care", Domain: "globex.example", Tier: "starter",
			Settings: map[string]any{"timezone": "Europe/Berlin"},
			Status:   entity.OrganizationStatusActive, RootUserID: "user_7", CreatedAt: now.Add(-30 * day),
		},
	}
	s.seq["org"] = 2

	users := []entity.User{
		{Name: "Rita Root", Email: "root@acme.example", Role: entity.RoleRoot, OrganizationID: "org_1", Availability: entity.AvailabilityOffline},
		{Name: "Mark Manager", Email: "manager@acme.example", Role: entity.RoleManager, OrganizationID: "org_1", Availability: entity.AvailabilityOnline},
		{Name: "Ada Admin", Email: "admin@acme.example", Role: entity.RoleAdmin, OrganizationID: "org_1", Availability: entity.AvailabilityOnline},
		{
			Name: "Sam Supervisor", Email: "supervisor@acme.example", Role: entity.RoleSupervisor, OrganizationID: "org_1",
			Availability: entity.AvailabilityOnline, Skills: []string{"billing", "escalations"},
			Permissions: []string{entity.PermissionOrdersEdit},
		},
		{
			Name: "Alex Agent", Email: "agent@acme.example", Role: entity.RoleAgent, OrganizationID: "org_1",
			Availability: entity.AvailabilityOnline, Skills: []string{"billing", "english"},
		},
		{
			Name: "Bea Agent", Email: "agent2@acme.example", Role: entity.RoleAgent, OrganizationID: "org_1",
			Availability: entity.AvailabilityBusy, Skills: []string{"technical", "spanish"},
		},
		{Name: "Gil Root", Email: "root@globex.example", Role: entity.RoleRoot, OrganizationID: "org_2", Availability: entity.AvailabilityOffline},
		{
			Name: "Otto Agent", Email: "agent@globex.example", Role: entity.RoleAgent, OrganizationID: "org_2",
			Availability: entity.AvailabilityOnline, Skills: []string{"german"},
		},
		{
			Name: "Sue Suspended", Email: "suspended@acme.example", Role: entity.RoleAgent, OrganizationID: "org_1",
			Status: entity.UserStatusSuspended, Availability: entity.AvailabilityOffline,
		},
	}

	for _, u := range users {
		u.ID = entity.UserID(s.next("user"))
		if u.Status == "" {
			u.Status = entity.UserStatusActive
		}

		if u.Permissions == nil {
			u.Permissions = []string{}
		}

		if u.Skills == nil {
			u.Skills = []string{}
		}

		u.Integrations = map[string]bool{}
		u.Settings = map[string]any{"theme": "light"}
		u.CreatedAt = now.Add(-60 * day)
		u.UpdatedAt = u.CreatedAt
		s.users = append(s.users, u)
	}

	customers := []entity.Customer{
		{OrganizationID: "org_1", Name: "Jane Cooper", AccountNumber: "ACC-1001", Email: "jane@cooper.example", Phone: "+15550100001", Company: "Cooper LLC", Tier: entity.CustomerTierGold},
		{OrganizationID: "org_1", Name: "Wade Warren", AccountNumber: "ACC-1002", Email: "wade@warren.example", Phone: "+15550100002", Company: "Warren Logistics", Tier: entity.CustomerTierSilver},
		{OrganizationID: "org_1", Name: "Esther Howard", AccountNumber: "ACC-1003", Email: "esther@howard.example", Phone: "+15550100003", Tier: entity.CustomerTierPlatinum},
		{OrganizationID: "org_1", Name: "Cody Fisher", AccountNumber: "ACC-1004", Email: "cody@fisher.example", Phone: "+15550100004", Tier: entity.CustomerTierBronze, Status: entity.CustomerStatusInactive},
		{OrganizationID: "org_2", Name: "Hans Gruber", AccountNumber: "GLX-2001", Email: "hans@gruber.example", Phone: "+49301234567", Tier: entity.CustomerTierBronze},
	}

	for i, c := range customers {
		c.ID = entity.CustomerID(s.next("customer"))
		if c.Status == "" {
			c.Status = entity.CustomerStatusActive
		}

		c.CreatedAt = now.Add(-time.Duration(40-i) * day)
		c.UpdatedAt = c.CreatedAt
		s.customers = append(s.customers, c)
	}

	tickets := []entity.Ticket{
		{OrganizationID: "org_1", CustomerID: "cust_1", Subject: "Invoice shows wrong amount", Status: entity.TicketStatusOpen, Priority: entity.TicketPriorityHigh, AssignedTo: "user_5"},
		{OrganizationID: "org_1", CustomerID: "cust_2", Subject: "Delivery delayed", Status: entity.TicketStatusInProgress, Priority: entity.TicketPriorityMedium, AssignedTo: "user_5"},
		{OrganizationID: "org_1", CustomerID: "cust_3", Subject: "Cannot log in to portal", Status: entity.TicketStatusOpen, Priority: entity.TicketPriorityUrgent, AssignedTo: "user_6"},
		{OrganizationID: "org_1", CustomerID: "cust_1", Subject: "Update billing address", Status: entity.TicketStatusResolved, Priority: entity.TicketPriorityLow, AssignedTo: "user_6"},
		{OrganizationID: "org_2", CustomerID: "cust_5", Subject: "Vertrag kündigen", Status: entity.TicketStatusOpen, Priority: entity.TicketPriorityMedium, AssignedTo: "user_8"},
	}

	for i, t := range tickets {
		t.ID = entity.TicketID(s.next("ticket"))
		t.CreatedAt = now.Add(-time.Duration(10-i) * day)
		t.UpdatedAt = t.CreatedAt
		s.tickets = append(s.tickets, t)
	}

	orders := []entity.Order{
		{
			OrganizationID: "org_1", CustomerID: "cust_1", Status: entity.OrderStatusPaid,
			Items: []entity.OrderItem{
				{SKU: "HS-100", Name: "Headset", Quantity: 2, UnitPrice: decimal.RequireFromString("49.90")},
				{SKU: "LIC-1Y", Name: "Annual license", Quantity: 1, UnitPrice: decimal.RequireFromString("299.00")},
			},
		},
		{
			OrganizationID: "org_1", CustomerID: "cust_2", Status: entity.OrderStatusPending,
			Items: []entity.OrderItem{
				{SKU: "HS-100", Name: "Headset", Quantity: 5, UnitPrice: decimal.RequireFromString("49.90")},
			},
		},
		{
			OrganizationID: "org_1", CustomerID: "cust_3", Status: entity.OrderStatusCancelled,
			Items: []entity.OrderItem{
				{SKU: "LIC-1Y", Name: "Annual license", Quantity: 3, UnitPrice: decimal.RequireFromString("299.00")},
			},
		},
	}

	for i, o := range orders {
		o.ID = entity.OrderID(s.next("order"))
		o.Total = entity.CalculateTotal(o.Items)
		o.CreatedAt = now.Add(-time.Duration(20-i) * day)
		o.UpdatedAt = o.CreatedAt
		s.orders = append(s.orders, o)
	}

	calls := []entity.Call{
		{OrganizationID: "org_1", CustomerID: "cust_1", AgentID: "user_5", PhoneNumber: "+15550100001", Direction: entity.CallDirectionInbound, Status: entity.CallStatusCompleted, DurationSeconds: 312},
		{OrganizationID: "org_1", CustomerID: "cust_3", AgentID: "user_6", PhoneNumber: "+15550100003", Direction: entity.CallDirectionInbound, Status: entity.CallStatusMissed},
		{OrganizationID: "org_1", CustomerID: "cust_2", AgentID: "user_5", PhoneNumber: "+15550100002", Direction: entity.CallDirectionOutbound, Status: entity.CallStatusCompleted, DurationSeconds: 95, Notes: "Confirmed new delivery date"},
	}

	for i, c := range calls {
		c.ID = entity.CallID(s.next("call"))
		c.CreatedAt = now.Add(-time.Duration(5-i) * time.Hour)
		s.calls = append(s.calls, c)
	}

	s.apps = []entity.Toggle{
		{ID: "slack", Name: "Slack", Enabled: true, Category: "communication"},
		{ID: "microsoft", Name: "Microsoft 365", Enabled: true, Category: "communication"},
		{ID: "asana", Name: "Asana", Enabled: false, Category: "productivity"},
		{ID: "hubspot", Name: "HubSpot", Enabled: true, Category: "crm"},
		{ID: "salesforce", Name: "Salesforce", Enabled: false, Category: "crm"},
		{ID: "mailchimp", Name: "Mailchimp", Enabled: false, Category: "marketing"},
		{ID: "stripe", Name: "Stripe", Enabled: false, Category: "finance"},
		{ID: "quickbooks", Name: "QuickBooks", Enabled: false, Category: "finance"},
	}

	s.features = []entity.Toggle{
		{ID: "call_recording", Name: "Call recording", Enabled: true, Category: "calls"},
		{ID: "live_chat", Name: "Live chat", Enabled: true, Category: "support"},
		{ID: "analytics", Name: "Analytics", Enabled: false, Category: "reports"},
		{ID: "bulk_export", Name: "Bulk export", Enabled: false, Category: "data"},
		{ID: "ai_assist", Name: "AI reply suggestions", Enabled: false, Category: "support"},
	}
}
