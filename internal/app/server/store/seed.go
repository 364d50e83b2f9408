package store

import "fmt"

// Tohum verisi üretiminde kullanılan listeler; kombinasyonlar deterministik
// olduğundan testler satır sayısına ve içeriğe güvenebilir.
var (
	seedFirstNames = []string{
		"Ali", "Ayşe", "Mehmet", "Fatma", "Hüseyin", "Zeynep", "Mustafa",
		"Emine", "İsmail", "Hatice", "Ahmet", "Elif", "Osman", "Merve",
		"Halil", "Şule", "Yusuf", "Gül", "Ömer",
	}
	seedLastNames = []string{
		"Yılmaz", "Kaya", "Demir", "Çelik", "Şahin", "Öztürk", "Aydın",
		"Arslan", "Doğan", "Koç", "Kurt", "Özkan", "Şimşek", "Polat",
		"Işık", "Erdoğan", "Güneş", "Aksoy", "Turan",
	}
	seedProvinces = []string{
		"Ankara", "İstanbul", "İzmir", "Bursa", "Konya", "Antalya",
		"Samsun", "Adana", "Trabzon",
	}
	seedPaths = []string{
		"genel-merkez", "il-baskanligi", "ilce-baskanligi",
	}
)

const seedPersonCount = 57

// seed, tanıtım kurulumunun açılış durumunu üretir: bir yönetici kullanıcı
// ve sayfalamayı gerçekçi kılacak kadar kişi.
func (s *Store) seed() {
	if err := s.AddUser("admin@btp.org.tr", "admin", "Saha Yöneticisi", "btp-demo"); err != nil {
		s.log.Error("tohum kullanıcı oluşturulamadı", "error", err)
	}

	people := make([]Person, 0, seedPersonCount)
	for i := 0; i < seedPersonCount; i++ {
		p := Person{
			ID:          fmt.Sprintf("p%03d", i+1),
			FullName:    seedFirstNames[i%len(seedFirstNames)] + " " + seedLastNames[(i*7)%len(seedLastNames)],
			PhoneNumber: fmt.Sprintf("5%02d%03d%02d%02d", 30+i%20, 100+i, 10+i%80, 20+i%70),
			Address:     seedProvinces[i%len(seedProvinces)],
		}

		// Her dördüncü kişi teşkilat kadrosunda
		if i%4 == 0 {
			p.Path = seedPaths[i%len(seedPaths)]
		}

		// Bir kısmının son görüşme tarihi hiç yok
		if i%5 != 3 {
			p.BirthDate = fmt.Sprintf("2024-%02d-%02dT00:00:00", 1+i%12, 1+i%28)
		}

		people = append(people, p)
	}

	s.mu.Lock()
	s.people = people
	s.mu.Unlock()

	s.log.Info("tanıtım verisi yüklendi", "people", len(people))
}
