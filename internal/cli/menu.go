// Package cli implements the interactive console menu. It is a thin
// presentation surface: every action collects input, calls one service
// operation and renders the result.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/service"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Menu drives the numbered console menu over a service.
type Menu struct {
	svc *service.Service
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu creates a menu reading commands from in and writing to out.
func NewMenu(svc *service.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(in), out: out}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, titleStyle.Render("MAINTENANCE MANAGEMENT SYSTEM"))
	fmt.Fprintln(m.out, sectionStyle.Render("EQUIPMENT"))
	fmt.Fprintln(m.out, "  1. Register equipment")
	fmt.Fprintln(m.out, "  2. List equipment")
	fmt.Fprintln(m.out, "  3. Search equipment")
	fmt.Fprintln(m.out, "  4. Edit equipment")
	fmt.Fprintln(m.out, "  5. Delete equipment")
	fmt.Fprintln(m.out, sectionStyle.Render("WORK ORDERS"))
	fmt.Fprintln(m.out, "  6. Create work order")
	fmt.Fprintln(m.out, "  7. List work orders")
	fmt.Fprintln(m.out, "  8. Update order state")
	fmt.Fprintln(m.out, "  9. Assign technician")
	fmt.Fprintln(m.out, " 10. Complete work order")
	fmt.Fprintln(m.out, " 11. Delete work order")
	fmt.Fprintln(m.out, sectionStyle.Render("TECHNICIANS"))
	fmt.Fprintln(m.out, " 12. Register technician")
	fmt.Fprintln(m.out, " 13. List technicians")
	fmt.Fprintln(m.out, " 14. Delete technician")
	fmt.Fprintln(m.out, sectionStyle.Render("PLANNING"))
	fmt.Fprintln(m.out, " 15. Create maintenance plan")
	fmt.Fprintln(m.out, " 16. List maintenance plans")
	fmt.Fprintln(m.out, " 17. Monthly workload")
	fmt.Fprintln(m.out, " 18. Delete maintenance plan")
	fmt.Fprintln(m.out, sectionStyle.Render("REPORTS"))
	fmt.Fprintln(m.out, " 19. Maintenance history")
	fmt.Fprintln(m.out, " 20. General statistics")
	fmt.Fprintln(m.out, " 21. Orders by state")
	fmt.Fprintln(m.out, "  0. Exit")
}

// Run loops the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Select an option")
		if !ok {
			return nil
		}
		if choice == "0" {
			if err := m.svc.Save(ctx); err != nil {
				m.warnf("data not saved: %v", err)
			}
			fmt.Fprintln(m.out, okStyle.Render("Goodbye."))
			return nil
		}
		m.dispatch(ctx, choice)
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) {
	switch choice {
	case "1":
		m.registerEquipment(ctx)
	case "2":
		m.listEquipment(m.svc.ListEquipment())
	case "3":
		m.searchEquipment()
	case "4":
		m.editEquipment(ctx)
	case "5":
		m.deleteEquipment(ctx)
	case "6":
		m.createOrder(ctx)
	case "7":
		m.listOrders(m.svc.ListWorkOrders())
	case "8":
		m.updateOrderState(ctx)
	case "9":
		m.assignTechnician(ctx)
	case "10":
		m.completeOrder(ctx)
	case "11":
		m.deleteOrder(ctx)
	case "12":
		m.registerTechnician(ctx)
	case "13":
		m.listTechnicians()
	case "14":
		m.deleteTechnician(ctx)
	case "15":
		m.createPlan(ctx)
	case "16":
		m.listPlans(m.svc.ListPlans())
	case "17":
		m.monthlyWorkload()
	case "18":
		m.deletePlan(ctx)
	case "19":
		m.showHistory()
	case "20":
		m.showStats()
	case "21":
		m.ordersByState()
	default:
		m.warnf("unknown option %q", choice)
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptInt(label string) (int, bool) {
	text, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		m.warnf("invalid number %q", text)
		return 0, false
	}
	return n, true
}

func (m *Menu) okf(format string, args ...interface{}) {
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf(format, args...)))
}

func (m *Menu) warnf(format string, args ...interface{}) {
	fmt.Fprintln(m.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

func (m *Menu) report(err error) bool {
	if err != nil {
		m.warnf("%v", err)
		return false
	}
	return true
}

func (m *Menu) registerEquipment(ctx context.Context) {
	name, _ := m.prompt("Equipment name")
	location, _ := m.prompt("Location")
	description, _ := m.prompt("Description")
	brand, _ := m.prompt("Brand")
	model, _ := m.prompt("Model")
	serial, _ := m.prompt("Serial number")
	priority, _ := m.prompt("Priority (High/Medium/Low)")
	eq, err := m.svc.CreateEquipment(ctx, service.EquipmentInput{
		Name: name, Location: location, Description: description,
		Brand: brand, Model: model, SerialNumber: serial,
		Priority: models.Priority(priority),
	})
	if m.report(err) {
		m.okf("Equipment %q registered with ID %d", eq.Name, eq.ID)
	}
}

func (m *Menu) listEquipment(list []models.Equipment) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No equipment registered.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-20s %-15s %-12s %-10s\n", "ID", "Name", "Location", "Status", "Priority")
	for _, eq := range list {
		fmt.Fprintf(m.out, "%-5d %-20s %-15s %-12s %-10s\n", eq.ID, eq.Name, eq.Location, eq.Status, eq.Priority)
	}
}

func (m *Menu) searchEquipment() {
	term, _ := m.prompt("Name or location")
	results := m.svc.FindEquipment(term)
	if len(results) == 0 {
		m.warnf("no equipment matches %q", term)
		return
	}
	m.listEquipment(results)
}

func (m *Menu) editEquipment(ctx context.Context) {
	m.listEquipment(m.svc.ListEquipment())
	id, ok := m.promptInt("Equipment ID")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "(leave blank to keep the current value)")
	name, _ := m.prompt("Name")
	location, _ := m.prompt("Location")
	status, _ := m.prompt("Status")
	_, err := m.svc.UpdateEquipment(ctx, id, service.EquipmentUpdate{
		Name: name, Location: location, Status: status,
	})
	if m.report(err) {
		m.okf("Equipment #%d updated", id)
	}
}

func (m *Menu) deleteEquipment(ctx context.Context) {
	m.listEquipment(m.svc.ListEquipment())
	id, ok := m.promptInt("Equipment ID to delete")
	if !ok {
		return
	}
	confirm, _ := m.prompt("Delete? (y/n)")
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(m.out, "Cancelled.")
		return
	}
	if m.report(m.svc.DeleteEquipment(ctx, id)) {
		m.okf("Equipment #%d deleted", id)
	}
}

func (m *Menu) createOrder(ctx context.Context) {
	m.listEquipment(m.svc.ListEquipment())
	id, ok := m.promptInt("Equipment ID")
	if !ok {
		return
	}
	description, _ := m.prompt("Work description")
	mtype, _ := m.prompt("Type (Preventive/Corrective/Predictive)")
	priority, _ := m.prompt("Priority (High/Medium/Low)")
	o, err := m.svc.CreateWorkOrder(ctx, service.WorkOrderInput{
		EquipmentID: id,
		Description: description,
		Type:        models.MaintenanceType(mtype),
		Priority:    models.Priority(priority),
	})
	if m.report(err) {
		m.okf("Work order #%d created", o.ID)
	}
}

func (m *Menu) listOrders(list []models.WorkOrder) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No work orders registered.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-20s %-12s %-12s %-10s %-15s\n", "ID", "Equipment", "Type", "State", "Priority", "Technician")
	for _, o := range list {
		technician := o.TechnicianName
		if technician == "" {
			technician = "Unassigned"
		}
		fmt.Fprintf(m.out, "%-5d %-20s %-12s %-12s %-10s %-15s\n", o.ID, o.EquipmentName, o.Type, o.Status, o.Priority, technician)
	}
}

func (m *Menu) updateOrderState(ctx context.Context) {
	m.listOrders(m.svc.ListWorkOrders())
	id, ok := m.promptInt("Order ID")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "States: Pending, In Progress, Paused, Completed, Cancelled")
	state, _ := m.prompt("New state")
	o, err := m.svc.Transition(ctx, id, models.WorkOrderStatus(state))
	if m.report(err) {
		m.okf("Order #%d is now %s", o.ID, o.Status)
	}
}

func (m *Menu) assignTechnician(ctx context.Context) {
	m.listOrders(m.svc.ListWorkOrders())
	orderID, ok := m.promptInt("Order ID")
	if !ok {
		return
	}
	m.listTechnicians()
	techID, ok := m.promptInt("Technician ID")
	if !ok {
		return
	}
	o, err := m.svc.AssignTechnician(ctx, orderID, techID)
	if m.report(err) {
		m.okf("Technician %s assigned to order #%d", o.TechnicianName, o.ID)
	}
}

func (m *Menu) completeOrder(ctx context.Context) {
	m.listOrders(m.svc.ListWorkOrders())
	id, ok := m.promptInt("Order ID to complete")
	if !ok {
		return
	}
	notes, _ := m.prompt("Closing notes")
	o, err := m.svc.CompleteWorkOrder(ctx, id, notes)
	if m.report(err) {
		m.okf("Order #%d completed", o.ID)
	}
}

func (m *Menu) deleteOrder(ctx context.Context) {
	m.listOrders(m.svc.ListWorkOrders())
	id, ok := m.promptInt("Order ID to delete")
	if !ok {
		return
	}
	confirm, _ := m.prompt("Delete? (y/n)")
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(m.out, "Cancelled.")
		return
	}
	if m.report(m.svc.DeleteWorkOrder(ctx, id)) {
		m.okf("Order #%d deleted", id)
	}
}

func (m *Menu) registerTechnician(ctx context.Context) {
	name, _ := m.prompt("Full name")
	specialty, _ := m.prompt("Specialty")
	phone, _ := m.prompt("Phone")
	t, err := m.svc.CreateTechnician(ctx, service.TechnicianInput{
		Name: name, Specialty: specialty, Phone: phone,
	})
	if m.report(err) {
		m.okf("Technician %q registered with ID %d", t.Name, t.ID)
	}
}

func (m *Menu) listTechnicians() {
	list := m.svc.ListTechnicians()
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No technicians registered.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-25s %-20s %-12s\n", "ID", "Name", "Specialty", "Status")
	for _, t := range list {
		fmt.Fprintf(m.out, "%-5d %-25s %-20s %-12s\n", t.ID, t.Name, t.Specialty, t.Status)
	}
}

func (m *Menu) deleteTechnician(ctx context.Context) {
	m.listTechnicians()
	id, ok := m.promptInt("Technician ID to delete")
	if !ok {
		return
	}
	confirm, _ := m.prompt("Delete? Bound orders will be detached (y/n)")
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(m.out, "Cancelled.")
		return
	}
	if m.report(m.svc.DeleteTechnician(ctx, id)) {
		m.okf("Technician #%d deleted", id)
	}
}

func (m *Menu) createPlan(ctx context.Context) {
	m.listEquipment(m.svc.ListEquipment())
	id, ok := m.promptInt("Equipment ID")
	if !ok {
		return
	}
	mtype, _ := m.prompt("Type (Preventive/Corrective/Predictive)")
	description, _ := m.prompt("Plan description")
	month, ok := m.promptInt("Target month (1-12)")
	if !ok {
		return
	}
	year, ok := m.promptInt("Year (YYYY)")
	if !ok {
		return
	}
	p, err := m.svc.CreatePlan(ctx, service.PlanInput{
		EquipmentID: id,
		Type:        models.MaintenanceType(mtype),
		Description: description,
		Month:       month,
		Year:        year,
	})
	if m.report(err) {
		m.okf("Plan #%d created", p.ID)
	}
}

func (m *Menu) listPlans(list []models.MaintenancePlan) {
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No plans registered.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-20s %-15s %-6s %-6s %-12s\n", "ID", "Equipment", "Type", "Month", "Year", "Status")
	for _, p := range list {
		fmt.Fprintf(m.out, "%-5d %-20s %-15s %-6d %-6d %-12s\n", p.ID, p.EquipmentName, p.Type, p.Month, p.Year, p.Status)
	}
}

func (m *Menu) monthlyWorkload() {
	month, ok := m.promptInt("Month (1-12)")
	if !ok {
		return
	}
	year, ok := m.promptInt("Year (YYYY)")
	if !ok {
		return
	}
	plans := m.svc.PlansByPeriod(month, year)
	if len(plans) == 0 {
		fmt.Fprintf(m.out, "No plans scheduled for %d/%d\n", month, year)
		return
	}
	m.listPlans(plans)
}

func (m *Menu) deletePlan(ctx context.Context) {
	m.listPlans(m.svc.ListPlans())
	id, ok := m.promptInt("Plan ID to delete")
	if !ok {
		return
	}
	if m.report(m.svc.DeletePlan(ctx, id)) {
		m.okf("Plan #%d deleted", id)
	}
}

func (m *Menu) showHistory() {
	history := m.svc.History()
	if len(history) == 0 {
		fmt.Fprintln(m.out, "No history entries.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-20s %-12s %-20s %-15s\n", "ID", "Equipment", "Type", "Completed", "Technician")
	for _, h := range history {
		technician := h.Technician
		if technician == "" {
			technician = "Unassigned"
		}
		fmt.Fprintf(m.out, "%-5d %-20s %-12s %-20s %-15s\n",
			h.OrderID, h.EquipmentName, h.Type, h.CompletedAt.Format("2006-01-02 15:04:05"), technician)
	}
}

func (m *Menu) showStats() {
	st := m.svc.Stats()
	fmt.Fprintf(m.out, "Equipment registered:     %d\n", st.Equipment)
	fmt.Fprintf(m.out, "Work orders:              %d\n", st.WorkOrders)
	fmt.Fprintf(m.out, "Technicians:              %d\n", st.Technicians)
	fmt.Fprintf(m.out, "Completed maintenance:    %d\n", st.CompletedInTotal)
	fmt.Fprintf(m.out, "Maintenance plans:        %d\n", st.Plans)
	fmt.Fprintf(m.out, "Orders pending:           %d\n", st.OrdersPending)
	fmt.Fprintf(m.out, "Orders in progress:       %d\n", st.OrdersInProgress)
	fmt.Fprintf(m.out, "Orders completed:         %d\n", st.OrdersCompleted)
}

func (m *Menu) ordersByState() {
	fmt.Fprintln(m.out, "States: Pending, In Progress, Paused, Completed, Cancelled")
	state, _ := m.prompt("State to filter")
	orders, err := m.svc.WorkOrdersByStatus(models.WorkOrderStatus(state))
	if !m.report(err) {
		return
	}
	if len(orders) == 0 {
		fmt.Fprintf(m.out, "No orders in state %q\n", state)
		return
	}
	m.listOrders(orders)
}
