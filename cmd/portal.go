package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/portal/gateway"
	"github.com/aosmicepp/platform/internal/portal/guard"
	"github.com/aosmicepp/platform/internal/portal/session"
	"github.com/aosmicepp/platform/pkg/logger"
)

// portalClient is the assembled client half: the session store, the guards'
// view of it, and one gateway per backend resource.
type portalClient struct {
	store        *session.Store
	auth         *gateway.AuthGateway
	users        *gateway.UserGateway
	demandes     *gateway.DemandeGateway
	reclamations *gateway.ReclamationGateway
	news         *gateway.NewsGateway
	catalog      *gateway.CatalogGateway
	dashboard    *gateway.DashboardGateway
}

func buildPortalClient() (*portalClient, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		// The portal half works without a config file; fall back to env.
		cfg = internal.LoadConfigFromEnv()
	}

	statePath := cfg.Portal.StatePath
	if statePath == "" {
		statePath = internal.DefaultPortalStatePath()
	}
	storage, err := session.NewSQLiteStorage(statePath)
	if err != nil {
		return nil, err
	}

	// The client and the store reference each other: the transport pulls
	// the token from the store, the store logs in through the gateway.
	holder := &tokenHolder{}
	client := gateway.NewClient(cfg.Portal.APIBaseURL, holder, cfg.Portal.Timeout)
	authGateway := gateway.NewAuthGateway(client)

	store, err := session.NewStore(storage, authGateway, logger.L())
	if err != nil {
		return nil, err
	}
	holder.store = store

	return &portalClient{
		store:        store,
		auth:         authGateway,
		users:        gateway.NewUserGateway(client),
		demandes:     gateway.NewDemandeGateway(client),
		reclamations: gateway.NewReclamationGateway(client),
		news:         gateway.NewNewsGateway(client),
		catalog:      gateway.NewCatalogGateway(client),
		dashboard:    gateway.NewDashboardGateway(client),
	}, nil
}

type tokenHolder struct {
	store *session.Store
}

func (t *tokenHolder) Token() string {
	if t.store == nil {
		return ""
	}
	return t.store.Token()
}

// navigate runs the protected guard for a target screen and reports where
// the user ends up. Screens only render when the guard allows.
func navigate(store *session.Store, target string, requiredRoles ...string) bool {
	decision := guard.Protected(store, target, requiredRoles...)
	if !decision.Allowed {
		fmt.Printf("redirected to %s\n", decision.RedirectTo)
		return false
	}
	return true
}

var portalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Portal client commands",
	Long:  `Interact with the platform as a signed-in user: login, browse, manage.`,
}

var portalPassword string

var portalLoginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and persist the session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		// The login screen is guest-only: an existing session navigates away.
		if decision := guard.Guest(pc.store); !decision.Allowed {
			fmt.Printf("already signed in, redirected to %s\n", decision.RedirectTo)
			return
		}

		identity, err := pc.store.Login(context.Background(), args[0], portalPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("signed in as %s %s (%s)\n", identity.FirstName, identity.LastName, identity.Role)
		if pc.store.MustChangePassword() {
			fmt.Println("password change required, redirected to " + guard.PathChangePassword)
		}
	},
}

var portalLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the session",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}
		if err := pc.store.Logout(); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("signed out")
	},
}

var portalWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, "/profile") {
			return
		}

		identity := pc.store.CurrentUser()
		fmt.Printf("%s %s <%s>\nrole: %s\nlanguage: %s\n",
			identity.FirstName, identity.LastName, identity.Email,
			identity.Role, pc.store.Language())
	},
}

var portalChangePasswordCmd = &cobra.Command{
	Use:   "change-password [current] [new]",
	Short: "Change the account password",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, guard.PathChangePassword) {
			return
		}

		if err := pc.auth.ChangePassword(context.Background(), args[0], args[1], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "password change failed: %v\n", err)
			os.Exit(1)
		}
		if err := pc.store.ClearMustChangePassword(); err != nil {
			log.Fatalf("failed to update session: %v", err)
		}
		fmt.Println("password changed")
	},
}

var portalNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "List published news",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		articles, err := pc.news.ListPublished(context.Background())
		if err != nil {
			log.Fatalf("failed to load news: %v", err)
		}
		for _, a := range articles {
			fmt.Printf("#%d %s — %s\n", a.ID, a.Title, a.Summary)
		}
	},
}

var portalDemandesCmd = &cobra.Command{
	Use:   "demandes",
	Short: "List my demandes",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, "/demandes", "ADMIN", "SUPPORT", "AGENT") {
			return
		}

		demandes, err := pc.demandes.ListMine(context.Background())
		if err != nil {
			log.Fatalf("failed to load demandes: %v", err)
		}
		for _, d := range demandes {
			fmt.Printf("#%d [%s] %s (%s)\n", d.ID, d.Status, d.Subject, d.ServiceType)
		}
	},
}

var portalUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform users (admin)",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, "/admin/users", "ADMIN") {
			return
		}

		users, err := pc.users.List(context.Background())
		if err != nil {
			log.Fatalf("failed to load users: %v", err)
		}
		for _, u := range users {
			status := "inactive"
			if u.IsActive {
				status = "active"
			}
			fmt.Printf("#%d %s %s <%s> %s (%s)\n", u.ID, u.FirstName, u.LastName, u.Email, u.Role, status)
		}
	},
}

var portalStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters (admin)",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, "/admin/dashboard", "ADMIN") {
			return
		}

		stats, err := pc.dashboard.Stats(context.Background())
		if err != nil {
			log.Fatalf("failed to load stats: %v", err)
		}
		fmt.Printf("users: %d\ndemandes: %d (%d pending)\nreclamations: %d\nmessages: %d (%d unread)\n",
			stats.TotalUsers, stats.TotalDemandes, stats.PendingDemandes,
			stats.TotalReclamations, stats.TotalMessages, stats.UnreadMessages)
	},
}

var portalServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List active catalog services",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		services, err := pc.catalog.ListActive(context.Background())
		if err != nil {
			log.Fatalf("failed to load services: %v", err)
		}
		for _, s := range services {
			fmt.Printf("#%d [%s] %s\n", s.ID, s.Type, s.Name)
		}
	},
}

var portalReclamationsCmd = &cobra.Command{
	Use:   "reclamations",
	Short: "List reclamations (admin/support)",
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if !navigate(pc.store, "/admin/reclamations", "ADMIN", "SUPPORT") {
			return
		}

		reclamations, err := pc.reclamations.List(context.Background())
		if err != nil {
			log.Fatalf("failed to load reclamations: %v", err)
		}
		for _, rec := range reclamations {
			fmt.Printf("#%d [%s/%s] %s\n", rec.ID, rec.Status, rec.Priority, rec.Subject)
		}
	},
}

var portalLangCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the language preference",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pc, err := buildPortalClient()
		if err != nil {
			log.Fatalf("portal init failed: %v", err)
		}

		if len(args) == 0 {
			fmt.Println(pc.store.Language())
			return
		}
		if err := pc.store.SetLanguage(args[0]); err != nil {
			log.Fatalf("failed to set language: %v", err)
		}
		fmt.Println("language set to", args[0])
	},
}

func init() {
	portalLoginCmd.Flags().StringVarP(&portalPassword, "password", "p", "", "account password")

	portalCmd.AddCommand(portalLoginCmd)
	portalCmd.AddCommand(portalLogoutCmd)
	portalCmd.AddCommand(portalWhoamiCmd)
	portalCmd.AddCommand(portalChangePasswordCmd)
	portalCmd.AddCommand(portalNewsCmd)
	portalCmd.AddCommand(portalDemandesCmd)
	portalCmd.AddCommand(portalUsersCmd)
	portalCmd.AddCommand(portalServicesCmd)
	portalCmd.AddCommand(portalReclamationsCmd)
	portalCmd.AddCommand(portalStatsCmd)
	portalCmd.AddCommand(portalLangCmd)
}
