package services_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

var boardNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newBoardItem(t *testing.T, status order.Status, priority order.Priority, deliveryAt time.Time) services.KanbanItem {
	t.Helper()
	return services.KanbanItem{
		ID:         kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		Status:     status,
		Priority:   priority,
		DeliveryAt: deliveryAt,
		Headcount:  12,
		Total:      kernel.MoneyFromFloat(545.00),
	}
}

func Test_KanbanProjector_Project(t *testing.T) {
	projector := services.NewKanbanProjector()

	t.Run("should produce all workflow columns even when empty", func(t *testing.T) {
		board := projector.Project(nil, nil)

		statuses := order.WorkflowStatuses()
		assert.Len(t, board.Columns, len(statuses))
		for i, column := range board.Columns {
			assert.Equal(t, statuses[i], column.Status)
			assert.Equal(t, 0, column.Count())
		}
	})

	t.Run("should group items by current status", func(t *testing.T) {
		items := []services.KanbanItem{
			newBoardItem(t, order.Pending, order.PriorityLow, boardNow.AddDate(0, 0, 7)),
			newBoardItem(t, order.Assembly, order.PriorityMedium, boardNow.AddDate(0, 0, 3)),
			newBoardItem(t, order.Assembly, order.PriorityMedium, boardNow.AddDate(0, 0, 2)),
		}

		board := projector.Project(items, nil)

		for _, column := range board.Columns {
			switch column.Status {
			case order.Pending:
				assert.Equal(t, 1, column.Count())
			case order.Assembly:
				assert.Equal(t, 2, column.Count())
			default:
				assert.Equal(t, 0, column.Count())
			}
		}
	})

	t.Run("should sort a column by priority before delivery time", func(t *testing.T) {
		later := newBoardItem(t, order.Pending, order.PriorityUrgent, boardNow.Add(20*time.Hour))
		sooner := newBoardItem(t, order.Pending, order.PriorityHigh, boardNow.Add(2*time.Hour))

		board := projector.Project([]services.KanbanItem{sooner, later}, nil)

		column := board.Columns[0]
		assert.Equal(t, order.Pending, column.Status)
		assert.Equal(t, []services.KanbanItem{later, sooner}, column.Items)
	})

	t.Run("should break priority ties by ascending delivery time", func(t *testing.T) {
		third := newBoardItem(t, order.Pending, order.PriorityMedium, boardNow.AddDate(0, 0, 4))
		first := newBoardItem(t, order.Pending, order.PriorityMedium, boardNow.AddDate(0, 0, 2))
		second := newBoardItem(t, order.Pending, order.PriorityMedium, boardNow.AddDate(0, 0, 3))

		board := projector.Project([]services.KanbanItem{third, first, second}, nil)

		assert.Equal(t, []services.KanbanItem{first, second, third}, board.Columns[0].Items)
	})

	t.Run("should drop items in terminal statuses", func(t *testing.T) {
		items := []services.KanbanItem{
			newBoardItem(t, order.Completed, order.PriorityLow, boardNow),
			newBoardItem(t, order.Cancelled, order.PriorityLow, boardNow),
			newBoardItem(t, order.LateEquipment, order.PriorityLow, boardNow),
		}

		board := projector.Project(items, nil)

		for _, column := range board.Columns {
			assert.Equal(t, 0, column.Count())
		}
	})

	t.Run("should filter to a single staff member's assignments", func(t *testing.T) {
		staffID := kernel.NewUUID()
		otherID := kernel.NewUUID()

		mine := newBoardItem(t, order.Initiated, order.PriorityHigh, boardNow.AddDate(0, 0, 1))
		mine.AssignedStaffID = &staffID
		theirs := newBoardItem(t, order.Initiated, order.PriorityHigh, boardNow.AddDate(0, 0, 1))
		theirs.AssignedStaffID = &otherID
		unassigned := newBoardItem(t, order.Pending, order.PriorityHigh, boardNow.AddDate(0, 0, 1))

		board := projector.Project([]services.KanbanItem{mine, theirs, unassigned}, &staffID)

		total := 0
		for _, column := range board.Columns {
			total += column.Count()
			if column.Count() > 0 {
				assert.Equal(t, order.Initiated, column.Status)
				assert.Equal(t, mine, column.Items[0])
			}
		}
		assert.Equal(t, 1, total)
	})
}

func Test_NewKanbanItem(t *testing.T) {
	t.Run("should project the order aggregate onto a board item", func(t *testing.T) {
		deliveryAt := boardNow.AddDate(0, 0, 3)
		address, err := order.NewAddress("12 Provence Lane", "Mimizan")
		assert.NoError(t, err)
		pricing, err := order.NewPricing(
			kernel.MoneyFromFloat(675.00),
			kernel.MoneyFromFloat(67.50),
			kernel.MoneyFromFloat(5.00),
			kernel.MoneyFromFloat(612.50),
		)
		assert.NoError(t, err)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			25, 10, address, deliveryAt, "", true, pricing, boardNow, "",
		)
		assert.NoError(t, err)

		item := services.NewKanbanItem(o)

		assert.True(t, item.ID.IsEqual(o.ID()))
		assert.True(t, item.CustomerID.IsEqual(o.CustomerID()))
		assert.Equal(t, order.Pending, item.Status)
		assert.Equal(t, order.PriorityMedium, item.Priority)
		assert.Equal(t, deliveryAt, item.DeliveryAt)
		assert.Equal(t, 25, item.Headcount)
		assert.True(t, item.Total.IsEqual(kernel.MoneyFromFloat(612.50)))
		assert.Equal(t, order.EquipmentPending, item.EquipmentStatus)
		assert.Nil(t, item.AssignedStaffID)
	})
}
