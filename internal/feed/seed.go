package feed

import "freshmart/storefront/internal/domain"

const seedPicture = "/images/222.jpg"

// SeedDocument returns the hardcoded fallback catalog used when the feed is
// unreachable. All seed goods live under the category tree; the flat products
// section stays empty, so nothing from the seed is reported as a new arrival.
func SeedDocument() *domain.FeedDocument {
	return &domain.FeedDocument{
		List: []domain.FeedCategory{
			{
				ID:       1,
				Name:     "蔬菜",
				Children: []string{"叶菜类", "根茎类", "瓜果类", "菌菇类"},
				Goods: []domain.FeedProduct{
					{ID: 1, Name: "新鲜西红柿", Price: 12.8, Picture: seedPicture, Desc: "新鲜采摘，营养丰富"},
					{ID: 3, Name: "优质土豆", Price: 6.8, Picture: seedPicture, Desc: "农家种植，口感绵软"},
					{ID: 5, Name: "新鲜黄瓜", Price: 4.5, Picture: seedPicture, Desc: "清脆爽口"},
				},
			},
			{
				ID:       2,
				Name:     "水果",
				Children: []string{"浆果类", "柑橘类", "热带水果", "核果类"},
				Goods: []domain.FeedProduct{
					{ID: 2, Name: "进口香蕉", Price: 8.5, Picture: seedPicture, Desc: "香甜可口，产地直供"},
					{ID: 4, Name: "红富士苹果", Price: 15.2, Picture: seedPicture, Desc: "脆甜多汁，新鲜直达"},
				},
			},
			{
				ID:       3,
				Name:     "肉类",
				Children: []string{"猪肉", "牛肉", "禽肉", "羊肉"},
				Goods: []domain.FeedProduct{
					{ID: 6, Name: "精品猪肉", Price: 32.8, Picture: seedPicture, Desc: "肉质鲜嫩"},
				},
			},
			{
				ID:       4,
				Name:     "水产",
				Children: []string{"鱼类", "虾类", "贝类", "蟹类"},
				Goods: []domain.FeedProduct{
					{ID: 7, Name: "鲜活鲤鱼", Price: 18.8, Picture: seedPicture, Desc: "现捞现卖"},
				},
			},
			{
				ID:       5,
				Name:     "粮油",
				Children: []string{"大米", "面粉", "食用油", "杂粮"},
				Goods: []domain.FeedProduct{
					{ID: 8, Name: "东北大米", Price: 68.8, Picture: seedPicture, Desc: "香软可口"},
				},
			},
			{
				ID:       6,
				Name:     "奶制品",
				Children: []string{"牛奶", "酸奶", "奶酪", "黄油"},
				Goods: []domain.FeedProduct{
					{ID: 9, Name: "纯牛奶", Price: 12.8, Picture: seedPicture, Desc: "营养丰富"},
					{ID: 10, Name: "酸奶", Price: 8.5, Picture: seedPicture, Desc: "酸甜可口"},
				},
			},
		},
	}
}
