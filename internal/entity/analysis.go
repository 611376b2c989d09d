package entity

// Analysis is the full result of one pricing analysis run.
type Analysis struct {
	AnalysisID  string        `json:"analysis_id"`
	Restaurant  Restaurant    `json:"restaurant"`
	Competitors []Competitor  `json:"competitors"`
	Weather     WeatherReport `json:"weather"`
	BusyLevel   int           `json:"busy_level"`
	Quotes      []PriceQuote  `json:"quotes"`
}

/*
Mysql Tables

CREATE TABLE restaurants (
	id INT AUTO_INCREMENT PRIMARY KEY,
	place_id VARCHAR(255) NOT NULL UNIQUE,
	name VARCHAR(255) NOT NULL,
	address TEXT,
	rating DOUBLE,
	price_level INT
);

CREATE TABLE price_quotes (
	id INT AUTO_INCREMENT PRIMARY KEY,
	analysis_id VARCHAR(36) NOT NULL,
	place_id VARCHAR(255) NOT NULL,
	item_name VARCHAR(255) NOT NULL,
	base_price DOUBLE NOT NULL,
	recommended_price DOUBLE NOT NULL,
	percent_change DOUBLE NOT NULL
);

*/
