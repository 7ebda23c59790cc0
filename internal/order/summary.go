package order

import (
	"fmt"
	"strings"
)

// Summary renders the operator notification for a placed order. The total
// line shows the stored client-declared total, not a recomputed sum, so a
// mismatch with the per-line amounts stays visible to the operator.
func Summary(o *Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 <b>Новый заказ</b> #%d\n", o.ID)
	if c := strings.TrimSpace(o.Customer); c != "" {
		fmt.Fprintf(&b, "👤 <b>Клиент:</b> %s\n", c)
	}
	if m := strings.TrimSpace(o.Metro); m != "" {
		fmt.Fprintf(&b, "🚇 <b>Метро:</b> %s\n", m)
	}
	if dt := strings.TrimSpace(o.DeliveryTime); dt != "" {
		fmt.Fprintf(&b, "⏰ <b>Время:</b> %s\n", dt)
	}

	b.WriteString("\n📦 <b>Состав:</b>\n")
	if len(o.Items) == 0 {
		b.WriteString("• (пусто)\n")
	}
	for _, it := range o.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = "Товар"
		}
		fmt.Fprintf(&b, "• %s × %d = %d ₽\n", name, it.Qty, it.Price*int64(it.Qty))
	}

	fmt.Fprintf(&b, "\n💰 <b>Итого:</b> %d ₽", o.Total)

	return b.String()
}
