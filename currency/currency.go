// Package currency holds the static price-tier configuration used to render
// a restaurant's 1-4 budget tier as a human-readable label in the owner's
// currency. Locale and country lookups are advisory defaults only; the user
// can always override their currency in settings.
package currency

import (
	"sort"
	"strings"
)

type Config struct {
	Code   string
	Symbol string
	Name   string
	// Thresholds split a local price into four tiers:
	// under Thresholds[0], up to Thresholds[1], up to Thresholds[2], above.
	Thresholds [3]float64
	Labels     [4]string
}

const DefaultCode = "USD"

var currencies = map[string]Config{
	// North America
	"USD": {"USD", "$", "US Dollar", [3]float64{10, 25, 50},
		[4]string{"Budget (under $10)", "Moderate ($10-25)", "Pricey ($25-50)", "Splurge ($50+)"}},
	"CAD": {"CAD", "C$", "Canadian Dollar", [3]float64{15, 35, 70},
		[4]string{"Budget (under C$15)", "Moderate (C$15-35)", "Pricey (C$35-70)", "Splurge (C$70+)"}},
	"MXN": {"MXN", "MX$", "Mexican Peso", [3]float64{150, 400, 800},
		[4]string{"Budget (under MX$150)", "Moderate (MX$150-400)", "Pricey (MX$400-800)", "Splurge (MX$800+)"}},

	// South America
	"BRL": {"BRL", "R$", "Brazilian Real", [3]float64{40, 100, 200},
		[4]string{"Budget (under R$40)", "Moderate (R$40-100)", "Pricey (R$100-200)", "Splurge (R$200+)"}},
	"ARS": {"ARS", "AR$", "Argentine Peso", [3]float64{5000, 15000, 30000},
		[4]string{"Budget (under AR$5000)", "Moderate (AR$5000-15000)", "Pricey (AR$15000-30000)", "Splurge (AR$30000+)"}},
	"CLP": {"CLP", "CL$", "Chilean Peso", [3]float64{8000, 20000, 40000},
		[4]string{"Budget (under CL$8000)", "Moderate (CL$8000-20000)", "Pricey (CL$20000-40000)", "Splurge (CL$40000+)"}},
	"COP": {"COP", "CO$", "Colombian Peso", [3]float64{25000, 60000, 120000},
		[4]string{"Budget (under CO$25000)", "Moderate (CO$25000-60000)", "Pricey (CO$60000-120000)", "Splurge (CO$120000+)"}},
	"PEN": {"PEN", "S/", "Peruvian Sol", [3]float64{25, 60, 120},
		[4]string{"Budget (under S/25)", "Moderate (S/25-60)", "Pricey (S/60-120)", "Splurge (S/120+)"}},

	// Europe
	"EUR": {"EUR", "€", "Euro", [3]float64{10, 25, 50},
		[4]string{"Budget (under €10)", "Moderate (€10-25)", "Pricey (€25-50)", "Splurge (€50+)"}},
	"GBP": {"GBP", "£", "British Pound", [3]float64{8, 20, 40},
		[4]string{"Budget (under £8)", "Moderate (£8-20)", "Pricey (£20-40)", "Splurge (£40+)"}},
	"CHF": {"CHF", "CHF", "Swiss Franc", [3]float64{15, 35, 70},
		[4]string{"Budget (under CHF15)", "Moderate (CHF15-35)", "Pricey (CHF35-70)", "Splurge (CHF70+)"}},
	"SEK": {"SEK", "kr", "Swedish Krona", [3]float64{100, 250, 500},
		[4]string{"Budget (under 100kr)", "Moderate (100-250kr)", "Pricey (250-500kr)", "Splurge (500kr+)"}},
	"NOK": {"NOK", "kr", "Norwegian Krone", [3]float64{120, 300, 600},
		[4]string{"Budget (under 120kr)", "Moderate (120-300kr)", "Pricey (300-600kr)", "Splurge (600kr+)"}},
	"DKK": {"DKK", "kr", "Danish Krone", [3]float64{80, 200, 400},
		[4]string{"Budget (under 80kr)", "Moderate (80-200kr)", "Pricey (200-400kr)", "Splurge (400kr+)"}},
	"PLN": {"PLN", "zł", "Polish Zloty", [3]float64{35, 80, 160},
		[4]string{"Budget (under 35zł)", "Moderate (35-80zł)", "Pricey (80-160zł)", "Splurge (160zł+)"}},
	"CZK": {"CZK", "Kč", "Czech Koruna", [3]float64{200, 500, 1000},
		[4]string{"Budget (under 200Kč)", "Moderate (200-500Kč)", "Pricey (500-1000Kč)", "Splurge (1000Kč+)"}},
	"HUF": {"HUF", "Ft", "Hungarian Forint", [3]float64{3000, 8000, 15000},
		[4]string{"Budget (under 3000Ft)", "Moderate (3000-8000Ft)", "Pricey (8000-15000Ft)", "Splurge (15000Ft+)"}},
	"RON": {"RON", "lei", "Romanian Leu", [3]float64{40, 100, 200},
		[4]string{"Budget (under 40 lei)", "Moderate (40-100 lei)", "Pricey (100-200 lei)", "Splurge (200 lei+)"}},
	"TRY": {"TRY", "₺", "Turkish Lira", [3]float64{200, 500, 1000},
		[4]string{"Budget (under ₺200)", "Moderate (₺200-500)", "Pricey (₺500-1000)", "Splurge (₺1000+)"}},
	"RUB": {"RUB", "₽", "Russian Ruble", [3]float64{500, 1500, 3000},
		[4]string{"Budget (under ₽500)", "Moderate (₽500-1500)", "Pricey (₽1500-3000)", "Splurge (₽3000+)"}},
	"UAH": {"UAH", "₴", "Ukrainian Hryvnia", [3]float64{200, 500, 1000},
		[4]string{"Budget (under ₴200)", "Moderate (₴200-500)", "Pricey (₴500-1000)", "Splurge (₴1000+)"}},

	// Asia
	"MYR": {"MYR", "RM", "Malaysian Ringgit", [3]float64{15, 40, 80},
		[4]string{"Budget (under RM15)", "Moderate (RM15-40)", "Pricey (RM40-80)", "Splurge (RM80+)"}},
	"SGD": {"SGD", "S$", "Singapore Dollar", [3]float64{12, 30, 60},
		[4]string{"Budget (under S$12)", "Moderate (S$12-30)", "Pricey (S$30-60)", "Splurge (S$60+)"}},
	"JPY": {"JPY", "¥", "Japanese Yen", [3]float64{1000, 2500, 5000},
		[4]string{"Budget (under ¥1000)", "Moderate (¥1000-2500)", "Pricey (¥2500-5000)", "Splurge (¥5000+)"}},
	"CNY": {"CNY", "¥", "Chinese Yuan", [3]float64{50, 150, 300},
		[4]string{"Budget (under ¥50)", "Moderate (¥50-150)", "Pricey (¥150-300)", "Splurge (¥300+)"}},
	"HKD": {"HKD", "HK$", "Hong Kong Dollar", [3]float64{80, 200, 400},
		[4]string{"Budget (under HK$80)", "Moderate (HK$80-200)", "Pricey (HK$200-400)", "Splurge (HK$400+)"}},
	"TWD": {"TWD", "NT$", "Taiwan Dollar", [3]float64{200, 500, 1000},
		[4]string{"Budget (under NT$200)", "Moderate (NT$200-500)", "Pricey (NT$500-1000)", "Splurge (NT$1000+)"}},
	"KRW": {"KRW", "₩", "South Korean Won", [3]float64{10000, 25000, 50000},
		[4]string{"Budget (under ₩10000)", "Moderate (₩10000-25000)", "Pricey (₩25000-50000)", "Splurge (₩50000+)"}},
	"THB": {"THB", "฿", "Thai Baht", [3]float64{150, 400, 800},
		[4]string{"Budget (under ฿150)", "Moderate (฿150-400)", "Pricey (฿400-800)", "Splurge (฿800+)"}},
	"VND": {"VND", "₫", "Vietnamese Dong", [3]float64{100000, 300000, 600000},
		[4]string{"Budget (under ₫100k)", "Moderate (₫100-300k)", "Pricey (₫300-600k)", "Splurge (₫600k+)"}},
	"IDR": {"IDR", "Rp", "Indonesian Rupiah", [3]float64{50000, 150000, 300000},
		[4]string{"Budget (under Rp50k)", "Moderate (Rp50-150k)", "Pricey (Rp150-300k)", "Splurge (Rp300k+)"}},
	"PHP": {"PHP", "₱", "Philippine Peso", [3]float64{300, 800, 1500},
		[4]string{"Budget (under ₱300)", "Moderate (₱300-800)", "Pricey (₱800-1500)", "Splurge (₱1500+)"}},
	"INR": {"INR", "₹", "Indian Rupee", [3]float64{300, 800, 1500},
		[4]string{"Budget (under ₹300)", "Moderate (₹300-800)", "Pricey (₹800-1500)", "Splurge (₹1500+)"}},
	"PKR": {"PKR", "Rs", "Pakistani Rupee", [3]float64{800, 2000, 4000},
		[4]string{"Budget (under Rs800)", "Moderate (Rs800-2000)", "Pricey (Rs2000-4000)", "Splurge (Rs4000+)"}},
	"BDT": {"BDT", "৳", "Bangladeshi Taka", [3]float64{300, 800, 1500},
		[4]string{"Budget (under ৳300)", "Moderate (৳300-800)", "Pricey (৳800-1500)", "Splurge (৳1500+)"}},
	"LKR": {"LKR", "Rs", "Sri Lankan Rupee", [3]float64{1000, 3000, 6000},
		[4]string{"Budget (under Rs1000)", "Moderate (Rs1000-3000)", "Pricey (Rs3000-6000)", "Splurge (Rs6000+)"}},
	"NPR": {"NPR", "Rs", "Nepalese Rupee", [3]float64{500, 1500, 3000},
		[4]string{"Budget (under Rs500)", "Moderate (Rs500-1500)", "Pricey (Rs1500-3000)", "Splurge (Rs3000+)"}},
	"MMK": {"MMK", "K", "Myanmar Kyat", [3]float64{5000, 15000, 30000},
		[4]string{"Budget (under K5000)", "Moderate (K5000-15000)", "Pricey (K15000-30000)", "Splurge (K30000+)"}},
	"KHR": {"KHR", "៛", "Cambodian Riel", [3]float64{20000, 50000, 100000},
		[4]string{"Budget (under ៛20k)", "Moderate (៛20-50k)", "Pricey (៛50-100k)", "Splurge (៛100k+)"}},

	// Middle East
	"AED": {"AED", "د.إ", "UAE Dirham", [3]float64{40, 100, 200},
		[4]string{"Budget (under د.إ40)", "Moderate (د.إ40-100)", "Pricey (د.إ100-200)", "Splurge (د.إ200+)"}},
	"SAR": {"SAR", "﷼", "Saudi Riyal", [3]float64{40, 100, 200},
		[4]string{"Budget (under ﷼40)", "Moderate (﷼40-100)", "Pricey (﷼100-200)", "Splurge (﷼200+)"}},
	"QAR": {"QAR", "ر.ق", "Qatari Riyal", [3]float64{40, 100, 200},
		[4]string{"Budget (under ر.ق40)", "Moderate (ر.ق40-100)", "Pricey (ر.ق100-200)", "Splurge (ر.ق200+)"}},
	"KWD": {"KWD", "د.ك", "Kuwaiti Dinar", [3]float64{3, 8, 15},
		[4]string{"Budget (under د.ك3)", "Moderate (د.ك3-8)", "Pricey (د.ك8-15)", "Splurge (د.ك15+)"}},
	"BHD": {"BHD", "BD", "Bahraini Dinar", [3]float64{4, 10, 20},
		[4]string{"Budget (under BD4)", "Moderate (BD4-10)", "Pricey (BD10-20)", "Splurge (BD20+)"}},
	"OMR": {"OMR", "ر.ع.", "Omani Rial", [3]float64{4, 10, 20},
		[4]string{"Budget (under ر.ع.4)", "Moderate (ر.ع.4-10)", "Pricey (ر.ع.10-20)", "Splurge (ر.ع.20+)"}},
	"JOD": {"JOD", "د.ا", "Jordanian Dinar", [3]float64{5, 15, 30},
		[4]string{"Budget (under د.ا5)", "Moderate (د.ا5-15)", "Pricey (د.ا15-30)", "Splurge (د.ا30+)"}},
	"ILS": {"ILS", "₪", "Israeli Shekel", [3]float64{40, 100, 200},
		[4]string{"Budget (under ₪40)", "Moderate (₪40-100)", "Pricey (₪100-200)", "Splurge (₪200+)"}},
	"EGP": {"EGP", "E£", "Egyptian Pound", [3]float64{200, 500, 1000},
		[4]string{"Budget (under E£200)", "Moderate (E£200-500)", "Pricey (E£500-1000)", "Splurge (E£1000+)"}},

	// Africa
	"ZAR": {"ZAR", "R", "South African Rand", [3]float64{150, 400, 800},
		[4]string{"Budget (under R150)", "Moderate (R150-400)", "Pricey (R400-800)", "Splurge (R800+)"}},
	"NGN": {"NGN", "₦", "Nigerian Naira", [3]float64{5000, 15000, 30000},
		[4]string{"Budget (under ₦5000)", "Moderate (₦5000-15000)", "Pricey (₦15000-30000)", "Splurge (₦30000+)"}},
	"KES": {"KES", "KSh", "Kenyan Shilling", [3]float64{800, 2000, 4000},
		[4]string{"Budget (under KSh800)", "Moderate (KSh800-2000)", "Pricey (KSh2000-4000)", "Splurge (KSh4000+)"}},
	"GHS": {"GHS", "GH₵", "Ghanaian Cedi", [3]float64{80, 200, 400},
		[4]string{"Budget (under GH₵80)", "Moderate (GH₵80-200)", "Pricey (GH₵200-400)", "Splurge (GH₵400+)"}},
	"MAD": {"MAD", "د.م.", "Moroccan Dirham", [3]float64{80, 200, 400},
		[4]string{"Budget (under د.م.80)", "Moderate (د.م.80-200)", "Pricey (د.م.200-400)", "Splurge (د.م.400+)"}},
	"TZS": {"TZS", "TSh", "Tanzanian Shilling", [3]float64{15000, 40000, 80000},
		[4]string{"Budget (under TSh15k)", "Moderate (TSh15-40k)", "Pricey (TSh40-80k)", "Splurge (TSh80k+)"}},

	// Oceania
	"AUD": {"AUD", "A$", "Australian Dollar", [3]float64{15, 35, 70},
		[4]string{"Budget (under A$15)", "Moderate (A$15-35)", "Pricey (A$35-70)", "Splurge (A$70+)"}},
	"NZD": {"NZD", "NZ$", "New Zealand Dollar", [3]float64{15, 40, 80},
		[4]string{"Budget (under NZ$15)", "Moderate (NZ$15-40)", "Pricey (NZ$40-80)", "Splurge (NZ$80+)"}},
	"FJD": {"FJD", "FJ$", "Fijian Dollar", [3]float64{20, 50, 100},
		[4]string{"Budget (under FJ$20)", "Moderate (FJ$20-50)", "Pricey (FJ$50-100)", "Splurge (FJ$100+)"}},
}

var countryToCurrency = map[string]string{
	"MY": "MYR",
	"US": "USD",
	"GB": "GBP",
	"AU": "AUD",
	"SG": "SGD",
	"JP": "JPY",
	"IN": "INR",
	// European countries
	"DE": "EUR", "FR": "EUR", "IT": "EUR", "ES": "EUR", "NL": "EUR",
	"BE": "EUR", "AT": "EUR", "PT": "EUR", "IE": "EUR", "FI": "EUR",
}

// Get returns the config for a currency code, falling back to USD when the
// code is unknown.
func Get(code string) Config {
	if c, ok := currencies[code]; ok {
		return c
	}
	return currencies[DefaultCode]
}

// PriceLabel renders a 1-4 budget tier as the label for the given currency.
// Out-of-range tiers render as an empty string.
func PriceLabel(tier int, code string) string {
	if tier < 1 || tier > 4 {
		return ""
	}
	return Get(code).Labels[tier-1]
}

// ForCountry returns the default currency code for an ISO country code.
func ForCountry(countryCode string) string {
	if code, ok := countryToCurrency[strings.ToUpper(countryCode)]; ok {
		return code
	}
	return DefaultCode
}

// Detect guesses a currency from a BCP 47-style locale such as "en-MY" or
// "ms_MY". Best effort only, never authoritative.
func Detect(locale string) string {
	parts := strings.FieldsFunc(locale, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) < 2 {
		return DefaultCode
	}
	return ForCountry(parts[1])
}

// Supported lists every configured currency, ordered by code.
func Supported() []Config {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	configs := make([]Config, len(codes))
	for i, code := range codes {
		configs[i] = currencies[code]
	}
	return configs
}
