package catalog

import "github.com/keihi-dev/keihi/internal/model"

// DefaultStores returns the store names, in display order.
func DefaultStores() []string {
	return []string{
		"糸我", "貴志川", "紀三井寺", "和歌山北インター", "東和歌山", "和佐",
		"かつらぎ", "御所", "天理", "熊野", "りんくう泉南", "池田",
		"倉吉", "岡南", "坂出", "徳島石井", "小松島",
	}
}

// DefaultStoreItems returns the store-expense item definitions.
func DefaultStoreItems() []model.StoreItem {
	return []model.StoreItem{
		{Name: "両替", IsInvoice: false},
		{Name: "エラー", IsInvoice: false},
		{Name: "プリカエラー", IsInvoice: false},
		{Name: "プリカ空転", IsInvoice: false},
		{Name: "消耗品", IsInvoice: true},
		{Name: "ゴミ・浄化槽", IsInvoice: true},
		{Name: "租税公課", IsInvoice: false},
		{Name: model.OtherItem, IsInvoice: false},
	}
}

// DefaultPersonalItems returns the personal-expense item names.
func DefaultPersonalItems() []string {
	return []string{
		"宿泊費", "ガソリン代", "フェリー代", "電車代", "高速代", "駐車料",
		"レンタカー", "消耗品", "洗車代", "交際費", "通信費", "租税公課",
		"県証紙", model.OtherItem,
	}
}
