package commands

import (
	"errors"
	"fmt"

	"github.com/keihi-dev/keihi/internal/entry"
	"github.com/keihi-dev/keihi/internal/export"
)

// User-facing notices.
const (
	noticeMissingRequired = "店舗、項目、金額は必須です"
	noticeMissingItem     = "項目、金額は必須です"
	noticeMissingOther    = "その他の内容を入力してください"
	noticeInvalidAmount   = "金額は整数で入力してください"
	noticeEmptyDataset    = "データがありません"
	noticeAdded           = "リストに追加しました"
	noticeDeleted         = "削除しました"
	noticeCleared         = "全データを削除しました"
	noticeExported        = "エクスポートしました"
)

// describe prefixes recoverable input errors with the matching notice.
func describe(err error) error {
	var notice string
	switch {
	case errors.Is(err, entry.ErrMissingRequiredField):
		notice = noticeMissingRequired
	case errors.Is(err, entry.ErrMissingOtherDetail):
		notice = noticeMissingOther
	case errors.Is(err, entry.ErrInvalidAmount):
		notice = noticeInvalidAmount
	case errors.Is(err, export.ErrEmptyDataset):
		notice = noticeEmptyDataset
	default:
		return err
	}
	return fmt.Errorf("%s (%w)", notice, err)
}

// describeInput is describe for entry input, naming only the fields the
// category asks for.
func describeInput(cat entry.Category, err error) error {
	if !cat.RequiresStore && errors.Is(err, entry.ErrMissingRequiredField) {
		return fmt.Errorf("%s (%w)", noticeMissingItem, err)
	}
	return describe(err)
}
