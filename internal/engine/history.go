package engine

import "github.com/tartampluch/age-calculator/internal/config"

// historicalEvents is keyed by year, from config.HistoryFirstYear to config.HistoryLastYear.
var historicalEvents = map[int][]string{
	1990: {"German reunification", "The Hubble Space Telescope is launched"},
	1991: {"The World Wide Web becomes publicly available", "The Soviet Union is dissolved"},
	1992: {"The Maastricht Treaty is signed"},
	1993: {"The European Union is established"},
	1994: {"The Channel Tunnel opens", "Nelson Mandela becomes President of South Africa"},
	1995: {"The World Trade Organization is founded"},
	1996: {"Dolly the sheep is cloned"},
	1997: {"Hong Kong is handed over to China", "Pathfinder lands on Mars"},
	1998: {"Construction of the International Space Station begins"},
	1999: {"The euro is introduced for electronic transactions"},
	2000: {"The world celebrates the new millennium"},
	2001: {"Wikipedia is launched"},
	2002: {"Euro banknotes and coins enter circulation"},
	2003: {"The Human Genome Project is completed"},
	2004: {"Facebook is launched", "Spirit and Opportunity land on Mars"},
	2005: {"YouTube is founded"},
	2006: {"Pluto is reclassified as a dwarf planet"},
	2007: {"The first iPhone is released"},
	2008: {"The Large Hadron Collider is switched on"},
	2009: {"The Bitcoin network goes live"},
	2010: {"The Burj Khalifa opens in Dubai"},
	2011: {"The Space Shuttle makes its final flight"},
	2012: {"Curiosity lands on Mars", "The Higgs boson is discovered"},
	2013: {"Pope Francis is elected"},
	2014: {"Rosetta's Philae lander touches down on a comet"},
	2015: {"New Horizons flies past Pluto", "The Paris Agreement is adopted"},
	2016: {"Gravitational waves are first announced"},
	2017: {"A total solar eclipse crosses the United States"},
	2018: {"Parker Solar Probe is launched"},
	2019: {"The first image of a black hole is published"},
	2020: {"The COVID-19 pandemic is declared"},
	2021: {"The James Webb Space Telescope is launched"},
	2022: {"The world population reaches 8 billion"},
	2023: {"Chandrayaan-3 lands near the Moon's south pole"},
}

// HistoricalEvents returns the events recorded for the birth year,
// or a single fallback line when the year is outside the table.
// Event descriptions are not translated.
func (c *Calculator) HistoricalEvents() []string {
	if events, ok := historicalEvents[c.Birth.Year]; ok {
		return append([]string(nil), events...)
	}
	return []string{c.text(config.TKeyHistoryNone, config.FallbackHistory, nil)}
}
