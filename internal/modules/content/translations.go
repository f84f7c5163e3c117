package content

// Text is one UI string in both site languages.
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Translations returns the static bilingual UI strings. The frontend
// caches these; keys are stable identifiers, not display text.
func Translations() map[string]Text {
	return map[string]Text{
		"heroTitle":    {En: "Where Comfort Meets Elegance", Ar: "حيث تلتقي الراحة بالأناقة"},
		"heroSubtitle": {En: "Experience the heart of Amman in luxury.", Ar: "استمتع بقلب عمان في فخامة."},
		"bookNow":      {En: "Book Now", Ar: "احجز الآن"},
		"viewRooms":    {En: "View Rooms", Ar: "عرض الغرف"},
		"aboutUs":      {En: "About Us", Ar: "معلومات عنا"},
		"facilities":   {En: "Facilities", Ar: "المرافق"},
		"contact":      {En: "Contact", Ar: "اتصل بنا"},
		"admin":        {En: "Admin", Ar: "مشرف"},
		"home":         {En: "Home", Ar: "الرئيسية"},
		"rooms":        {En: "Rooms & Suites", Ar: "الغرف والأجنحة"},
		"gallery":      {En: "Gallery", Ar: "المعرض"},
		"reviews":      {En: "Reviews", Ar: "التقييمات"},
		"night":        {En: "/ night", Ar: "/ ليلة"},
		"checkIn":      {En: "Check-in", Ar: "تسجيل الوصول"},
		"checkOut":     {En: "Check-out", Ar: "المغادرة"},
		"guests":       {En: "Guests", Ar: "الضيوف"},
		"search":       {En: "Check Availability", Ar: "تحقق من التوفر"},
		"footerText":   {En: "© 2024 Antalya Hotel Amman. All rights reserved.", Ar: "© 2024 فندق أنطاليا عمان. جميع الحقوق محفوظة."},
		"aiPrompt":     {En: "Ask our AI Concierge...", Ar: "اسأل المساعد الذكي..."},
	}
}
