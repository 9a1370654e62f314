package billing

import (
	"fmt"
)

// DescribeFunc turns a line item into display text. Keeping rendering
// behind a function keeps the tariff math free of locale concerns;
// callers may swap in their own localization.
type DescribeFunc func(item LineItem, cover *ContractCover) string

var tierLabelsVI = map[TierKind]string{
	TierMonth: "tháng",
	TierDay:   "ngày",
	TierHour:  "giờ",
}

// DescribeVietnamese renders receipt lines the way facility staff see
// them, e.g. "2 ngày × 150000đ" or "3 giờ × 20000đ".
func DescribeVietnamese(item LineItem, cover *ContractCover) string {
	if item.Kind == TierContract {
		if cover == nil {
			return "Miễn phí theo hợp đồng"
		}
		return fmt.Sprintf("Miễn phí theo hợp đồng đến %s", cover.EndsAt.Format("02/01/2006"))
	}
	return fmt.Sprintf("%d %s × %s", item.Quantity, tierLabelsVI[item.Kind], item.UnitRate)
}
