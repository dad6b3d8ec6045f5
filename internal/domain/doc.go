// Package domain models the agricultural market, weather, and government
// scheme data served to farmers.
//
// # Data Sources
//
// Mandi (wholesale market) prices originate from the data.gov.in Agmarknet
// resource, which publishes daily per-market commodity prices. Price fields
// arrive inconsistently typed (sometimes JSON numbers, sometimes numeric
// strings like "1200.50") and are coerced at the boundary by
// [NormalizePrice]. Unparseable price fields become 0 rather than an error
// so a partial upstream record still renders.
//
// Weather data comes from the OpenWeatherMap current-conditions and 5-day /
// 3-hour forecast endpoints. Temperatures are degrees Celsius, wind speed is
// metres per second at the source ([WeatherSnapshot.WindKMH] applies the
// display conversion), and precipitation probability is the 0 to 1 "pop" field.
//
// Government schemes are a static, hand-authored catalog: there is no live
// upstream. A scheme's State is either a concrete state name or the
// [StateAllIndia] sentinel meaning the program applies nationwide.
//
// # Filtering Conventions
//
// Commodity filters match case-insensitively on substring, not equality,
// because upstream commodity naming is inconsistent ("Chilli" must match
// "Chilli (Dry)"). State and district filters are exact. The literal "All"
// in a filter field disables that predicate.
//
// Sorting is stable so ties keep their source order; price columns compare
// numerically, everything else lexicographically.
package domain
