// ABOUTME: CRM CLI commands for customers, deals, and interactions
// ABOUTME: Deleting a customer cascades to their deals and interactions
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/harperreed/dayboard/models"
)

// AddCustomerCommand creates a customer.
func AddCustomerCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-customer", flag.ExitOnError)
	name := fs.String("name", "", "Customer name (required)")
	company := fs.String("company", "", "Company name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	status := fs.String("status", "prospect", "Status (active, inactive, prospect, former)")
	address := fs.String("address", "", "Address")
	notes := fs.String("notes", "", "Notes")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	customer := models.Customer{
		Name:    *name,
		Company: *company,
		Email:   *email,
		Phone:   *phone,
		Status:  models.CustomerStatus(*status),
		Address: *address,
		Notes:   *notes,
	}
	if *tags != "" {
		customer.Tags = strings.Split(*tags, ",")
	}

	app.Customers.Create(&customer)
	fmt.Printf("✓ Customer created: %s (ID: %s)\n", customer.Name, customer.ID)
	return nil
}

// ListCustomersCommand lists customers, optionally searched or filtered.
func ListCustomersCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-customers", flag.ExitOnError)
	query := fs.String("query", "", "Search by name, company, or email")
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	var customers []models.Customer
	switch {
	case *query != "":
		customers = app.Customers.Search(*query)
	case *status != "":
		customers = app.Customers.ByStatus(models.CustomerStatus(*status))
	default:
		customers = app.Customers.List()
	}

	if len(customers) == 0 {
		fmt.Println("No customers found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCOMPANY\tSTATUS\tPHONE\tID")
	_, _ = fmt.Fprintln(w, "----\t-------\t------\t-----\t--")
	for _, c := range customers {
		company := c.Company
		if company == "" {
			company = "-"
		}
		phone := c.Phone
		if phone == "" {
			phone = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, company, c.Status, phone, shortID(c.ID))
	}
	_ = w.Flush()

	stats := app.Customers.Stats()
	fmt.Printf("\nTotal: %d customer(s), %d active, %d prospect(s)\n", stats.Total, stats.Active, stats.Prospects)
	return nil
}

// UpdateCustomerCommand updates fields of an existing customer. Flags must
// come before the customer ID.
func UpdateCustomerCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-customer", flag.ExitOnError)
	name := fs.String("name", "", "Customer name")
	company := fs.String("company", "", "Company name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	status := fs.String("status", "", "Status")
	address := fs.String("address", "", "Address")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("customer ID is required")
	}
	id, err := resolveCustomerID(app, fs.Arg(0))
	if err != nil {
		return err
	}

	var patch models.CustomerPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "company":
			patch.Company = company
		case "email":
			patch.Email = email
		case "phone":
			patch.Phone = phone
		case "status":
			s := models.CustomerStatus(*status)
			patch.Status = &s
		case "address":
			patch.Address = address
		case "notes":
			patch.Notes = notes
		}
	})

	updated := app.Customers.Update(id, patch)
	if updated == nil {
		return fmt.Errorf("customer not found: %s", id)
	}
	fmt.Printf("✓ Customer updated: %s\n", updated.Name)
	return nil
}

// DeleteCustomerCommand removes a customer and cascades to their deals and
// interactions.
func DeleteCustomerCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("customer ID is required")
	}
	id, err := resolveCustomerID(app, args[0])
	if err != nil {
		return err
	}

	if !app.Customers.Delete(id) {
		return fmt.Errorf("customer not found: %s", id)
	}

	removed := 0
	for _, d := range app.Deals.ByCustomer(id) {
		if app.Deals.Delete(d.ID) {
			removed++
		}
	}
	interactions := 0
	for _, in := range app.Interactions.ByCustomer(id) {
		if app.Interactions.Delete(in.ID) {
			interactions++
		}
	}

	fmt.Printf("✓ Customer deleted (%d deal(s), %d interaction(s) removed)\n", removed, interactions)
	return nil
}

// AddDealCommand creates a deal for a customer.
func AddDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-deal", flag.ExitOnError)
	customer := fs.String("customer", "", "Customer ID (required)")
	title := fs.String("title", "", "Deal title (required)")
	value := fs.Float64("value", 0, "Deal value")
	stage := fs.String("stage", "lead", "Stage (lead, contacted, proposal, negotiation, closed-won, closed-lost)")
	close := fs.String("close", "", "Expected close date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *customer == "" {
		return fmt.Errorf("--customer is required")
	}
	customerID, err := resolveCustomerID(app, *customer)
	if err != nil {
		return err
	}

	deal := models.Deal{
		CustomerID: customerID,
		Title:      *title,
		Value:      *value,
		Stage:      models.DealStage(*stage),
		Notes:      *notes,
	}
	if *close != "" {
		d, err := parseDate(*close)
		if err != nil {
			return err
		}
		deal.ExpectedClose = &d
	}

	app.Deals.Create(&deal)
	fmt.Printf("✓ Deal created: %s (ID: %s)\n", deal.Title, deal.ID)
	return nil
}

// ListDealsCommand lists deals, optionally filtered by stage or customer.
func ListDealsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-deals", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	customer := fs.String("customer", "", "Filter by customer ID")
	upcoming := fs.Bool("upcoming", false, "Only open deals closing within 30 days")
	_ = fs.Parse(args)

	var deals []models.Deal
	switch {
	case *upcoming:
		deals = app.Deals.Upcoming()
	case *stage != "":
		deals = app.Deals.ByStage(models.DealStage(*stage))
	case *customer != "":
		id, err := resolveCustomerID(app, *customer)
		if err != nil {
			return err
		}
		deals = app.Deals.ByCustomer(id)
	default:
		deals = app.Deals.List()
	}

	if len(deals) == 0 {
		fmt.Println("No deals found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tCUSTOMER\tVALUE\tSTAGE\tCLOSE\tID")
	_, _ = fmt.Fprintln(w, "-----\t--------\t-----\t-----\t-----\t--")
	for _, d := range deals {
		customerName := shortID(d.CustomerID)
		if c := app.Customers.Get(d.CustomerID); c != nil {
			customerName = c.Name
		}
		close := "-"
		if d.ExpectedClose != nil {
			close = models.DayKey(*d.ExpectedClose)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n", d.Title, customerName, d.Value, d.Stage, close, shortID(d.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d deal(s)\n", len(deals))
	return nil
}

// MoveDealCommand moves a deal to another pipeline stage.
func MoveDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("move-deal", flag.ExitOnError)
	stage := fs.String("stage", "", "Target stage (required)")
	_ = fs.Parse(args)

	if *stage == "" {
		return fmt.Errorf("--stage is required")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("deal ID is required")
	}
	id, err := resolveDealID(app, fs.Arg(0))
	if err != nil {
		return err
	}

	updated := app.Deals.MoveStage(id, models.DealStage(*stage))
	if updated == nil {
		return fmt.Errorf("deal not found: %s", id)
	}
	fmt.Printf("✓ Deal moved to %s: %s\n", updated.Stage, updated.Title)
	return nil
}

// DeleteDealCommand removes a deal.
func DeleteDealCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("deal ID is required")
	}
	id, err := resolveDealID(app, args[0])
	if err != nil {
		return err
	}

	if !app.Deals.Delete(id) {
		return fmt.Errorf("deal not found: %s", id)
	}
	fmt.Printf("✓ Deal deleted: %s\n", shortID(id))
	return nil
}

// DealStatsCommand prints the pipeline summary.
func DealStatsCommand(app *App, args []string) error {
	stats := app.Deals.Stats()

	fmt.Println("Pipeline")
	fmt.Println("--------")
	fmt.Printf("Open deals:       %d ($%.2f)\n", stats.OpenDeals, stats.PipelineValue)
	fmt.Printf("Closed won:       %d ($%.2f)\n", stats.ClosedWon, stats.ClosedWonValue)
	fmt.Printf("Closed lost:      %d ($%.2f)\n", stats.ClosedLost, stats.ClosedLostValue)
	fmt.Printf("Conversion rate:  %d%%\n", stats.ConversionRate)
	return nil
}

// LogInteractionCommand records an interaction with a customer.
func LogInteractionCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("log-interaction", flag.ExitOnError)
	customer := fs.String("customer", "", "Customer ID (required)")
	kind := fs.String("type", "note", "Type (call, email, meeting, visit, note)")
	date := fs.String("date", "", "Interaction date (YYYY-MM-DD, default today)")
	notes := fs.String("notes", "", "Notes (required)")
	followUp := fs.String("follow-up", "", "Follow-up date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *customer == "" {
		return fmt.Errorf("--customer is required")
	}
	if *notes == "" {
		return fmt.Errorf("--notes is required")
	}
	customerID, err := resolveCustomerID(app, *customer)
	if err != nil {
		return err
	}

	interaction := models.Interaction{
		CustomerID: customerID,
		Type:       models.InteractionType(*kind),
		Date:       time.Now(),
		Notes:      *notes,
	}
	if *date != "" {
		d, err := parseDate(*date)
		if err != nil {
			return err
		}
		interaction.Date = d
	}
	if *followUp != "" {
		f, err := parseDate(*followUp)
		if err != nil {
			return err
		}
		interaction.FollowUp = &f
	}

	app.Interactions.Create(&interaction)
	fmt.Printf("✓ Interaction logged: %s with %s\n", interaction.Type, *customer)
	return nil
}

// ListInteractionsCommand shows a customer's interaction history.
func ListInteractionsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-interactions", flag.ExitOnError)
	customer := fs.String("customer", "", "Filter by customer ID")
	recent := fs.Bool("recent", false, "Only the last 30 days")
	_ = fs.Parse(args)

	var interactions []models.Interaction
	switch {
	case *customer != "":
		id, err := resolveCustomerID(app, *customer)
		if err != nil {
			return err
		}
		interactions = app.Interactions.ByCustomer(id)
	case *recent:
		interactions = app.Interactions.Recent()
	default:
		interactions = app.Interactions.List()
	}

	if len(interactions) == 0 {
		fmt.Println("No interactions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTYPE\tCUSTOMER\tFOLLOW-UP\tNOTES")
	_, _ = fmt.Fprintln(w, "----\t----\t--------\t---------\t-----")
	for _, in := range interactions {
		customerName := shortID(in.CustomerID)
		if c := app.Customers.Get(in.CustomerID); c != nil {
			customerName = c.Name
		}
		follow := "-"
		if in.FollowUp != nil {
			follow = models.DayKey(*in.FollowUp)
		}
		notes := truncate(in.Notes, 40)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", models.DayKey(in.Date), in.Type, customerName, follow, notes)
	}
	_ = w.Flush()
	return nil
}

// FollowUpsCommand shows overdue and upcoming follow-ups.
func FollowUpsCommand(app *App, args []string) error {
	overdue := app.Interactions.OverdueFollowUps()
	upcoming := app.Interactions.UpcomingFollowUps()

	if len(overdue) == 0 && len(upcoming) == 0 {
		fmt.Println("No follow-ups scheduled")
		return nil
	}

	printFollowUps := func(header string, items []models.Interaction) {
		if len(items) == 0 {
			return
		}
		fmt.Println(header)
		for _, in := range items {
			customerName := shortID(in.CustomerID)
			if c := app.Customers.Get(in.CustomerID); c != nil {
				customerName = c.Name
			}
			fmt.Printf("  %s  %s (%s)\n", models.DayKey(*in.FollowUp), customerName, in.Type)
		}
		fmt.Println()
	}

	printFollowUps("⚠ Overdue:", overdue)
	printFollowUps("→ Upcoming:", upcoming)
	if count := app.Interactions.TodaysFollowUpCount(); count > 0 {
		fmt.Printf("%d follow-up(s) due today\n", count)
	}
	return nil
}

// truncate caps s at max runes, ending with an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func resolveCustomerID(app *App, id string) (string, error) {
	if app.Customers.Get(id) != nil {
		return id, nil
	}
	var match string
	for _, c := range app.Customers.List() {
		if strings.HasPrefix(c.ID, id) {
			if match != "" {
				return "", fmt.Errorf("ambiguous customer ID prefix: %s", id)
			}
			match = c.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("customer not found: %s", id)
	}
	return match, nil
}

func resolveDealID(app *App, id string) (string, error) {
	if app.Deals.Get(id) != nil {
		return id, nil
	}
	var match string
	for _, d := range app.Deals.List() {
		if strings.HasPrefix(d.ID, id) {
			if match != "" {
				return "", fmt.Errorf("ambiguous deal ID prefix: %s", id)
			}
			match = d.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("deal not found: %s", id)
	}
	return match, nil
}
