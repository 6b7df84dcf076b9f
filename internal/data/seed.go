package data

import "time"

// DefaultSettings returns the settings used until the first save.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "Dilek Öğretmen",
		SiteTagline:     "Yeni Nesil Eğitim Platformu",
		SiteDescription: "Geleceği şekillendiren zihinler için modern eğitim materyalleri, yeni nesil sınav rehberleri ve ilham veren içerikler.",
		BannerURL:       "https://images.unsplash.com/photo-1524178232363-1fb2b075b655?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
		FooterText:      "Bilgi paylaştıkça çoğalır. Öğrencilerim için sevgiyle hazırlandı.",
		Language:        "tr",
		Timezone:        "Europe/Istanbul",
		ThemeColor:      "ocean",

		GoogleSearchConsoleID: "GSC-Verification-Token-123",
		GoogleAnalyticsID:     "G-XXXXXXXXXX",
		RobotsTxt:             "User-agent: *\nAllow: /\nSitemap: https://dilekogretmen.com/sitemap.xml",

		AdsensePublisherID: "pub-xxxxxxxxxxxxxxxx",

		TwitterHandle:    "@dilekogretmen",
		InstagramProfile: "instagram.com/dilekogretmen",

		SMTPServer:                 "smtp.gmail.com",
		SMTPPort:                   "587",
		SMTPUser:                   "info@dilekogretmen.com",
		AdminEmail:                 "admin@dilekogretmen.com",
		EnableCommentNotifications: true,

		EnableCache:             true,
		EnableImageOptimization: true,
		EnableGzip:              true,
	}
}

// seedPosts builds the default posts and pages with timestamps relative to now.
func seedPosts(now time.Time) []ContentItem {
	ago := func(ms int64) time.Time {
		return now.Add(-time.Duration(ms) * time.Millisecond)
	}

	return []ContentItem{
		{
			ID:             "1",
			Title:          "2024 LGS Maratonu: Son 3 Ayda Netleri Artırmanın Yolları",
			Slug:           "lgs-maratonu-son-3-ay",
			Excerpt:        "Sınav yaklaşıyor ve heyecan dorukta! Peki, bu kritik virajda çalışma stratejinizi nasıl değiştirmelisiniz? İşte derece yaptıran taktikler.",
			Content:        "<p>LGS hazırlık süreci uzun bir maratondur. Bu süreçte sadece çok çalışmak değil, verimli çalışmak da önemlidir.</p><h3>1. Planlı Olun</h3><p>Her gün ne çalışacağınızı önceden belirleyin.</p><h3>2. Uyku Düzeni</h3><p>Zihnin bilgiyi işlemesi için uyku şarttır.</p>",
			Category:       "Sınav Taktikleri",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      now,
			UpdatedAt:      now,
			Views:          8540,
			FeaturedImage:  "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			SEOTitle:       "LGS Başarı Rehberi - Dilek Öğretmen",
			SEODescription: "LGS öğrencileri için son 3 ayda net arttırma taktikleri ve çalışma programı.",
			FocusKeyword:   "LGS 2024",
			Tags:           "lgs, sınav, motivasyon",
		},
		{
			ID:             "2",
			Title:          "Evdeki Malzemelerle Yapabileceğiniz 5 Çılgın Fen Deneyi",
			Slug:           "evde-fen-deneyleri",
			Excerpt:        "Bilimi sadece kitaplardan öğrenmek sıkıcı değil mi? Mutfağınızdaki malzemelerle fiziği ve kimyayı keşfetmeye hazır olun.",
			Content:        "<p>Deney yapmak çocukların merak duygusunu geliştirir.</p>",
			Category:       "Fen Deneyleri",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(86400000),
			UpdatedAt:      now,
			Views:          3250,
			FeaturedImage:  "https://images.unsplash.com/photo-1532094349884-543bc11b234d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			SEOTitle:       "Evde Fen Deneyleri - Eğlenceli Bilim",
			SEODescription: "Çocuklar için evde yapılabilecek güvenli ve eğitici 5 fen deneyi.",
			FocusKeyword:   "fen deneyi",
			Tags:           "bilim, deney, evde etkinlik",
		},
		{
			ID:             "3",
			Title:          "Matematik Korkusunu Yenmenin 7 Altın Kuralı",
			Slug:           "matematik-korkusunu-yenmek",
			Excerpt:        "Matematik zor değil, sadece yanlış anlaşılmış bir derstir. Ön yargılarınızı kırmaya hazır mısınız?",
			Content:        "<p>Matematik hayatın kendisidir.</p>",
			Category:       "Matematik Dünyası",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(172800000),
			UpdatedAt:      now,
			Views:          1200,
			FeaturedImage:  "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			SEOTitle:       "Matematik Korkusu Nasıl Yenilir?",
			SEODescription: "Öğrencilerin matematik ön yargısını kırmak için 7 etkili yöntem.",
			FocusKeyword:   "matematik korkusu",
			Tags:           "matematik, psikoloji, başarı",
		},
		{
			ID:             "4",
			Title:          "Yeni Nesil Sorular Nasıl Çözülür?",
			Slug:           "yeni-nesil-sorular-cozum-teknikleri",
			Excerpt:        "Uzun paragraflar, karmaşık şekiller... Yeni nesil sorular kabusunuz olmasın. Okuduğunu anlama teknikleri burada.",
			Content:        "<p>Yeni nesil sorular aslında okuduğunu anlama sınavıdır.</p>",
			Category:       "Sınav Taktikleri",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(259200000),
			UpdatedAt:      now,
			Views:          4500,
			FeaturedImage:  "https://images.unsplash.com/photo-1596495578065-6e0763fa1178?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			SEOTitle:       "Yeni Nesil Soru Çözüm Taktikleri",
			SEODescription: "LGS ve YKS için yeni nesil matematik ve fen soruları nasıl çözülür?",
			FocusKeyword:   "yeni nesil soru",
			Tags:           "lgs, yks, soru çözümü",
		},
		{
			ID:             "5",
			Title:          "Pomodoro Tekniği ile Verimli Ders Çalışma",
			Slug:           "pomodoro-teknigi",
			Excerpt:        "25 dakika çalış, 5 dakika mola. Basit ama etkili bu yöntemle odaklanma sorununuzu çözün.",
			Content:        "<p>Zaman yönetimi başarının anahtarıdır.</p>",
			Category:       "Rehberlik",
			Type:           TypePost,
			Status:         StatusReview,
			CreatedAt:      ago(345600000),
			UpdatedAt:      now,
			FeaturedImage:  "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			SEOTitle:       "Pomodoro ile Odaklanma",
			SEODescription: "Pomodoro tekniği nedir ve öğrenciler için nasıl uygulanır?",
			FocusKeyword:   "pomodoro",
			Tags:           "verimli çalışma, zaman yönetimi",
		},
		{
			ID:             "6",
			Title:          "Çocuklara Okuma Alışkanlığı Kazandırmanın 5 Yolu",
			Slug:           "okuma-aliskanligi",
			Excerpt:        "Kitap sevgisi küçük yaşta başlar. Evde uygulayabileceğiniz basit ama etkili öneriler.",
			Content:        "<p>Her gün birlikte okunan on dakika, hayat boyu süren bir alışkanlığın temelidir.</p>",
			Category:       "Veli Köşesi",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(432000000),
			UpdatedAt:      now,
			Views:          980,
			SEOTitle:       "Okuma Alışkanlığı Nasıl Kazandırılır?",
			SEODescription: "Veliler için çocuklara okuma alışkanlığı kazandırmanın pratik yolları.",
			FocusKeyword:   "okuma alışkanlığı",
			Tags:           "veli, kitap önerisi",
		},
		{
			ID:             "7",
			Title:          "Yapay Zeka Destekli Eğitim Araçları",
			Slug:           "yapay-zeka-egitim",
			Excerpt:        "Eğitimde devrim yaratan AI araçlarını keşfedin.",
			Content:        "<p>ChatGPT, Gemini ve daha fazlası...</p>",
			Category:       "Teknoloji & Eğitim",
			Type:           TypePost,
			Status:         StatusDraft,
			CreatedAt:      now,
			UpdatedAt:      now,
			SEOTitle:       "Eğitimde Yapay Zeka",
			SEODescription: "Öğretmenler ve öğrenciler için en iyi yapay zeka araçları.",
			FocusKeyword:   "yapay zeka",
			Tags:           "ai, teknoloji",
		},
		{
			ID:             "8",
			Title:          "Hız ve Renk Problemleri Nasıl Çözülür?",
			Slug:           "hiz-renk-problemleri",
			Excerpt:        "Fizik dersinin zorlu konusu optik artık çok kolay.",
			Content:        "...",
			Category:       "Fen Deneyleri",
			Type:           TypePost,
			Status:         StatusScheduled,
			CreatedAt:      now.Add(24 * time.Hour),
			UpdatedAt:      now,
			SEOTitle:       "Optik Konu Anlatımı",
			SEODescription: "Fizik dersi optik ve renkler konusu detaylı anlatım.",
			FocusKeyword:   "optik",
			Tags:           "fizik, fen",
		},
		{
			ID:             "9",
			Title:          "Paragraf Sorularında Hız Kazanma",
			Slug:           "paragraf-hiz",
			Excerpt:        "Türkçe netlerinizi uçuracak taktikler.",
			Content:        "...",
			Category:       "Sınav Taktikleri",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(500000000),
			UpdatedAt:      now,
			Views:          2100,
			SEOTitle:       "Paragraf Hız Taktikleri",
			SEODescription: "Paragraf sorularını hızlı çözmek için okuma teknikleri.",
			FocusKeyword:   "paragraf",
			Tags:           "türkçe, lgs",
		},
		{
			ID:             "10",
			Title:          "Üslü Sayılar Konu Anlatımı",
			Slug:           "uslu-sayilar",
			Excerpt:        "Matematiğin temeli üslü sayılar.",
			Content:        "...",
			Category:       "Matematik Dünyası",
			Type:           TypePost,
			Status:         StatusPublished,
			CreatedAt:      ago(600000000),
			UpdatedAt:      now,
			Views:          3400,
			SEOTitle:       "Üslü Sayılar 8. Sınıf",
			SEODescription: "8. sınıf matematik üslü sayılar konu anlatımı ve örnek sorular.",
			FocusKeyword:   "üslü sayılar",
			Tags:           "matematik, 8.sınıf",
		},
		{
			ID:             "11",
			Title:          "Kesirlerle Dört İşlem",
			Slug:           "kesirlerle-islemler",
			Excerpt:        "Kesirlerde toplama, çıkarma, çarpma ve bölme adım adım.",
			Content:        "<p>Paydaları eşitlemeden başlayalım.</p>",
			Category:       "7. Sınıf Matematik",
			Type:           TypePost,
			Status:         StatusDraft,
			CreatedAt:      ago(3600000),
			UpdatedAt:      now,
			SEOTitle:       "Kesirlerle İşlemler",
			SEODescription: "7. sınıf kesirlerle dört işlem konu anlatımı.",
			Tags:           "matematik",
		},

		{
			ID:             "100",
			Title:          "Ana Sayfa",
			Slug:           "home",
			Excerpt:        "Eğitim materyalleri ve rehberlik.",
			Content:        "Ana sayfa içeriği...",
			Category:       "System",
			Type:           TypePage,
			Status:         StatusPublished,
			CreatedAt:      ago(999999999),
			UpdatedAt:      now,
			Views:          15000,
			SEOTitle:       "Dilek Öğretmen - Eğitim ve Rehberlik",
			SEODescription: "Öğrenciler için ders notları, LGS rehberliği ve motivasyon yazıları.",
			RobotsIndex:    "index",
			RobotsFollow:   "follow",
		},
		{
			ID:             "101",
			Title:          "Hakkımızda",
			Slug:           "hakkimizda",
			Excerpt:        "Biz kimiz? Eğitim felsefemiz.",
			Content:        "Merhaba, ben Dilek. 15 yıllık eğitim tecrübemle buradayım...",
			Category:       "Kurumsal",
			Type:           TypePage,
			Status:         StatusPublished,
			CreatedAt:      ago(888888888),
			UpdatedAt:      now,
			Views:          4500,
			FeaturedImage:  "https://images.unsplash.com/photo-1524178232363-1fb2b075b655?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			SEOTitle:       "Hakkımızda - Dilek Öğretmen",
			SEODescription: "Dilek Öğretmen kimdir? Vizyonumuz ve eğitim materyallerimiz hakkında bilgi alın.",
			RobotsIndex:    "index",
			RobotsFollow:   "follow",
		},
		{
			ID:             "102",
			Title:          "İletişim",
			Slug:           "iletisim",
			Excerpt:        "Bize ulaşın.",
			Content:        "<p>Email: info@dilekogretmen.com</p><p>Adres: İstanbul, Türkiye</p>",
			Category:       "Kurumsal",
			Type:           TypePage,
			Status:         StatusPublished,
			CreatedAt:      ago(777777777),
			UpdatedAt:      now,
			Views:          1200,
			SEOTitle:       "İletişim - Bize Ulaşın",
			SEODescription: "Soru ve görüşleriniz için iletişim formunu kullanabilirsiniz.",
			RobotsIndex:    "index",
			RobotsFollow:   "follow",
		},
		{
			ID:             "103",
			Title:          "Gizlilik Politikası",
			Slug:           "gizlilik-politikasi",
			Excerpt:        "Veri güvenliğiniz.",
			Content:        "<p>Kişisel verileriniz bizim için önemlidir...</p>",
			Category:       "Yasal",
			Type:           TypePage,
			Status:         StatusPublished,
			CreatedAt:      ago(666666666),
			UpdatedAt:      now,
			Views:          300,
			SEOTitle:       "Gizlilik Politikası",
			SEODescription: "Web sitemizin gizlilik ve çerez politikası.",
			RobotsIndex:    "index",
			RobotsFollow:   "nofollow",
		},
		{
			ID:             "104",
			Title:          "Kullanım Şartları",
			Slug:           "kullanim-sartlari",
			Excerpt:        "Site kuralları.",
			Content:        "<p>Bu siteyi kullanarak şu şartları kabul etmiş sayılırsınız...</p>",
			Category:       "Yasal",
			Type:           TypePage,
			Status:         StatusPublished,
			CreatedAt:      ago(555555555),
			UpdatedAt:      now,
			Views:          250,
			SEOTitle:       "Kullanım Şartları",
			SEODescription: "Site kullanım koşulları ve yasal uyarılar.",
			RobotsIndex:    "noindex",
			RobotsFollow:   "nofollow",
		},
	}
}

func seedCategories() []Category {
	return []Category{
		{ID: "1", Name: "LGS Kampı", Slug: "lgs-kampi", Description: "LGS hazırlık süreci notları", SEODescription: "8. Sınıf LGS hazırlık ders notları ve testleri."},
		{ID: "2", Name: "Matematik Dünyası", Slug: "matematik-dunyasi", Description: "Matematik konu anlatımları", SEODescription: "İlkokul ve ortaokul matematik konu anlatımları."},
		{ID: "3", Name: "Fen Deneyleri", Slug: "fen-deneyleri", Description: "Evde yapılabilecek deneyler", SEODescription: "Eğlenceli ve öğretici fen bilimleri deneyleri."},
		{ID: "4", Name: "Sınav Taktikleri", Slug: "sinav-taktikleri", Description: "Rehberlik ve motivasyon", SEODescription: "LGS ve YKS sınavları için taktikler."},
		{ID: "5", Name: "Rehberlik", Slug: "rehberlik", Description: "Genel rehberlik yazıları", SEODescription: "Öğrenci koçluğu ve rehberlik servisi."},
		{ID: "6", Name: "Teknoloji & Eğitim", Slug: "teknoloji-egitim", Description: "Eğitimde teknoloji kullanımı", SEODescription: "Yapay zeka ve dijital eğitim araçları."},
		{ID: "7", Name: "8. Sınıf Matematik", Slug: "8-sinif-matematik", Description: "LGS Matematik konuları", ParentID: "2", SEODescription: "8. sınıf matematik müfredatı ve konu anlatımları."},
		{ID: "8", Name: "7. Sınıf Matematik", Slug: "7-sinif-matematik", Description: "7. sınıf konuları", ParentID: "2", SEODescription: "7. sınıf matematik ders notları."},
		{ID: "9", Name: "Veli Köşesi", Slug: "veli-kosesi", Description: "Veliler için bilgilendirme", ParentID: "5", SEODescription: "Ebeveynlere özel eğitim rehberliği."},
		{ID: "10", Name: "Motivasyon", Slug: "motivasyon", Description: "Başarı hikayeleri", ParentID: "5", SEODescription: "Öğrenciler için motivasyon kaynakları."},
	}
}

func seedTags() []Tag {
	return []Tag{
		{ID: "1", Name: "lgs 2024", Slug: "lgs-2024", Count: 15},
		{ID: "2", Name: "matematik", Slug: "matematik", Count: 42},
		{ID: "3", Name: "fen bilimleri", Slug: "fen-bilimleri", Count: 35},
		{ID: "4", Name: "deneme sınavı", Slug: "deneme-sinavi", Count: 20},
		{ID: "5", Name: "yeni nesil sorular", Slug: "yeni-nesil-sorular", Count: 18},
		{ID: "6", Name: "pomodoro", Slug: "pomodoro", Count: 5},
		{ID: "7", Name: "ders çalışma programı", Slug: "ders-calisma-programi", Count: 12},
		{ID: "8", Name: "sınav stresi", Slug: "sinav-stresi", Count: 8},
		{ID: "9", Name: "okul öncesi", Slug: "okul-oncesi", Count: 4},
		{ID: "10", Name: "eğitim teknolojileri", Slug: "egitim-teknolojileri", Count: 9},
		{ID: "11", Name: "yapay zeka", Slug: "yapay-zeka", Count: 6},
		{ID: "12", Name: "öğretmen", Slug: "ogretmen", Count: 11},
		{ID: "13", Name: "öğrenci", Slug: "ogrenci", Count: 25},
		{ID: "14", Name: "veli", Slug: "veli", Count: 7},
		{ID: "15", Name: "kitap önerisi", Slug: "kitap-onerisi", Count: 3},
		{ID: "16", Name: "motivasyon", Slug: "motivasyon", Count: 14},
		{ID: "17", Name: "başarı", Slug: "basari", Count: 10},
		{ID: "18", Name: "lgs matematik", Slug: "lgs-matematik", Count: 22},
		{ID: "19", Name: "lgs fen", Slug: "lgs-fen", Count: 19},
		{ID: "20", Name: "online eğitim", Slug: "online-egitim", Count: 8},
	}
}

func seedBacklinks() []Backlink {
	return []Backlink{
		{ID: "1", Domain: "meb.gov.tr", PageURL: "/egitim-haberleri/yeni-mufredat", DomainAuthority: 91, SpamScore: 1, BacklinkCount: 3, FirstSeen: "2023-11-15", LastSeen: "2024-03-10"},
		{ID: "2", Domain: "eba.gov.tr", PageURL: "/icerik/matematik-materyalleri", DomainAuthority: 88, SpamScore: 0, BacklinkCount: 12, FirstSeen: "2023-09-01", LastSeen: "2024-03-12"},
		{ID: "3", Domain: "egitimhane.com", PageURL: "/forum/8-sinif-lgs", DomainAuthority: 45, SpamScore: 5, BacklinkCount: 8, FirstSeen: "2024-01-20", LastSeen: "2024-03-05"},
		{ID: "4", Domain: "sorubak.com", PageURL: "/lgs-puan-hesaplama", DomainAuthority: 38, SpamScore: 12, BacklinkCount: 2, FirstSeen: "2024-02-15", LastSeen: "2024-02-15"},
		{ID: "5", Domain: "medium.com", PageURL: "/@egitimgonullusu/en-iyi-bloglar", DomainAuthority: 95, SpamScore: 2, BacklinkCount: 1, FirstSeen: "2023-12-05", LastSeen: "2023-12-05"},
		{ID: "6", Domain: "facebook.com", PageURL: "/groups/lgsanneleri", DomainAuthority: 96, SpamScore: 8, BacklinkCount: 45, FirstSeen: "2023-05-10", LastSeen: "2024-03-13"},
	}
}

func seedKeywords() []KeywordRank {
	return []KeywordRank{
		{ID: "1", Keyword: "lgs matematik konu anlatımı", Rank: 3, PreviousRank: 5, Volume: 12000, Traffic: 3400, Difficulty: 65, URL: "/post/matematik-konu-anlatimi"},
		{ID: "2", Keyword: "8. sınıf fen deneyleri", Rank: 8, PreviousRank: 12, Volume: 5400, Traffic: 850, Difficulty: 40, URL: "/post/evde-fen-deneyleri"},
		{ID: "3", Keyword: "sınav stresi ile başa çıkma", Rank: 1, PreviousRank: 2, Volume: 2100, Traffic: 980, Difficulty: 30, URL: "/post/sinav-stresi"},
		{ID: "4", Keyword: "pomodoro tekniği", Rank: 15, PreviousRank: 14, Volume: 45000, Traffic: 120, Difficulty: 85, URL: "/post/pomodoro-teknigi"},
		{ID: "5", Keyword: "yeni nesil soru çözüm taktikleri", Rank: 4, PreviousRank: 4, Volume: 3200, Traffic: 1100, Difficulty: 55, URL: "/post/yeni-nesil-sorular"},
		{ID: "6", Keyword: "lgs puan hesaplama", Rank: 102, PreviousRank: 0, Volume: 150000, Traffic: 0, Difficulty: 98, URL: "/page/home"},
	}
}
