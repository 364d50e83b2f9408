package client

import "github.com/AhmetHKarabulut/btp-app/internal/domain/member"

// demoMembers, sunucuya ulaşılamadığında gösterilen çevrimdışı kümedir.
// Tanıtım kurulumlarında uygulamanın boş ekranla açılmaması için var;
// bu veriyle yapılan her gösterim SourceDemo bayrağı taşır.
var demoMembers = []member.Member{
	{ID: "t1", FullName: "Ali Yılmaz", Phone: "0532 111 22 33", Category: member.CategoryOrganization, LastContact: "2024-04-12", Province: "Ankara", District: "Çankaya"},
	{ID: "t2", FullName: "Hüseyin Çelik", Phone: "0543 222 33 44", Category: member.CategoryOrganization, LastContact: "2024-03-05", Province: "İstanbul", District: "Üsküdar"},
	{ID: "t3", FullName: "Mustafa Kaya", Phone: "0505 333 44 55", Category: member.CategoryOrganization, LastContact: "2024-05-20", Province: "İzmir", District: "Konak"},
	{ID: "s1", FullName: "Fatma Işık", Phone: "0555 444 55 66", Category: member.CategorySympathizer, LastContact: "2024-01-18", Province: "Bursa", District: "Nilüfer"},
	{ID: "s2", FullName: "Mehmet Öztürk", Phone: "0506 555 66 77", Category: member.CategorySympathizer, LastContact: "2023-12-02", Province: "Konya", District: "Selçuklu"},
	{ID: "s3", FullName: "Ayşe Demir", Phone: "0533 666 77 88", Category: member.CategorySympathizer, LastContact: "2024-02-25", Province: "Ankara", District: "Keçiören"},
	{ID: "s4", FullName: "İsmail Aslan", Phone: "0544 777 88 99", Category: member.CategorySympathizer, Province: "Samsun", District: "İlkadım"},
	{ID: "s5", FullName: "Zeynep Koç", Phone: "0507 888 99 00", Category: member.CategorySympathizer, LastContact: "2024-06-09", Province: "Antalya", District: "Muratpaşa"},
}

// DemoMembers, çevrimdışı kümenin bir kopyasını döndürür; çağıran sıralayıp
// süzebilsin diye paylaşılan dilim dışarı verilmez.
func DemoMembers() []member.Member {
	out := make([]member.Member, len(demoMembers))
	copy(out, demoMembers)
	return out
}

func demoByCategory(cat member.Category) []member.Member {
	out := make([]member.Member, 0, len(demoMembers))
	for _, m := range demoMembers {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}
