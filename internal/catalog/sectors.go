package catalog

import (
	"sort"
	"strings"

	"MarketPulse/internal/domain/models"
)

// Benchmark is the reference index every sector and stock is measured
// against.
var Benchmark = models.Listing{Symbol: "^NSEI", Name: "NIFTY 50", Short: "NIFTY"}

// Index group keys accepted by the sector scan.
const (
	GroupSectorial   = "sectorial"
	GroupBroadMarket = "broad_market"
	GroupThematic    = "thematic"
	GroupAll         = "all"
)

// Sectorial indices. Symbols with the NSE: prefix are not served by the
// primary quote source and resolve through the provider's fallback.
var sectorialIndices = []models.Listing{
	{Symbol: "^NSEBANK", Name: "Bank Nifty", Short: "BANKNIFTY"},
	{Symbol: "^CNXPSUBANK", Name: "Nifty PSU Bank", Short: "PSUBANK"},
	{Symbol: "NSE:NIFTY PRIVATE BANK", Name: "Nifty Pvt Bank", Short: "PVTBANK"},
	{Symbol: "NSE:NIFTY FINANCIAL SERVICES", Name: "Nifty Finance", Short: "FINNIFTY"},
	{Symbol: "^CNXIT", Name: "Nifty IT", Short: "NIFTYIT"},
	{Symbol: "^CNXPHARMA", Name: "Nifty Pharma", Short: "PHARMA"},
	{Symbol: "NSE:NIFTY HEALTHCARE INDEX", Name: "Nifty Healthcare", Short: "HEALTHCARE"},
	{Symbol: "^CNXFMCG", Name: "Nifty FMCG", Short: "FMCG"},
	{Symbol: "NSE:NIFTY CONSUMER DURABLES", Name: "Nifty Consumer Durables", Short: "CONSDUR"},
	{Symbol: "NSE:NIFTY INDIA CONSUMPTION", Name: "Nifty India Consumption", Short: "CONSUMPTION"},
	{Symbol: "^CNXAUTO", Name: "Nifty Auto", Short: "AUTO"},
	{Symbol: "^CNXMETAL", Name: "Nifty Metal", Short: "METAL"},
	{Symbol: "^CNXREALTY", Name: "Nifty Realty", Short: "REALTY"},
	{Symbol: "^CNXINFRA", Name: "Nifty Infra", Short: "INFRA"},
	{Symbol: "^CNXENERGY", Name: "Nifty Energy", Short: "ENERGY"},
	{Symbol: "^CNXMEDIA", Name: "Nifty Media", Short: "MEDIA"},
	{Symbol: "NSE:NIFTY COMMODITIES", Name: "Nifty Commodities", Short: "COMMODITIES"},
	{Symbol: "^CNXMNC", Name: "Nifty MNC", Short: "MNC"},
	{Symbol: "^CNXSERVICE", Name: "Nifty Services", Short: "SERVICES"},
	{Symbol: "^CNXPSE", Name: "Nifty PSE", Short: "PSE"},
	{Symbol: "NSE:NIFTY CPSE", Name: "Nifty CPSE", Short: "CPSE"},
}

var broadMarketIndices = []models.Listing{
	{Symbol: "^NIFTYJR", Name: "Nifty Next 50", Short: "NIFTYNEXT50"},
	{Symbol: "^CNX100", Name: "Nifty 100", Short: "NIFTY100"},
	{Symbol: "^CNX200", Name: "Nifty 200", Short: "NIFTY200"},
	{Symbol: "^CNX500", Name: "Nifty 500", Short: "NIFTY500"},
	{Symbol: "NSE:NIFTY TOTAL MARKET", Name: "Nifty Total Market", Short: "TOTALMKT"},
	{Symbol: "^NIFTYMIDCAP50", Name: "Nifty Midcap 50", Short: "MIDCAP50"},
	{Symbol: "^CNXMIDCAP", Name: "Nifty Midcap 100", Short: "MIDCAP100"},
	{Symbol: "NSE:NIFTY MIDCAP 150", Name: "Nifty Midcap 150", Short: "MIDCAP150"},
	{Symbol: "NSE:NIFTY MIDCAP SELECT", Name: "Nifty Midcap Select", Short: "MIDCAPSEL"},
	{Symbol: "^NIFTYSMLCAP50", Name: "Nifty Smallcap 50", Short: "SMALLCAP50"},
	{Symbol: "^CNXSMALLCAP", Name: "Nifty Smallcap 100", Short: "SMALLCAP100"},
	{Symbol: "NSE:NIFTY SMALLCAP 250", Name: "Nifty Smallcap 250", Short: "SMALLCAP250"},
	{Symbol: "NSE:NIFTY MICROCAP 250", Name: "Nifty Microcap 250", Short: "MICROCAP250"},
	{Symbol: "NSE:NIFTY LARGEMIDCAP 250", Name: "Nifty LargeMidcap 250", Short: "LARGEMID250"},
	{Symbol: "NSE:NIFTY MIDSMALLCAP 400", Name: "Nifty MidSmallcap 400", Short: "MIDSML400"},
}

var thematicIndices = []models.Listing{
	{Symbol: "NSE:NIFTY INDIA DEFENCE", Name: "Nifty India Defence", Short: "DEFENCE"},
	{Symbol: "NSE:NIFTY INDIA MANUFACTURING", Name: "Nifty India Manufacturing", Short: "MANUFACTURING"},
	{Symbol: "NSE:NIFTY INDIA DIGITAL", Name: "Nifty India Digital", Short: "DIGITAL"},
	{Symbol: "NSE:NIFTY HOUSING", Name: "Nifty Housing", Short: "HOUSING"},
	{Symbol: "NSE:NIFTY TRANSPORTATION & LOGISTICS", Name: "Nifty Transport & Logistics", Short: "TRANSPORT"},
	{Symbol: "NSE:NIFTY INDIA TOURISM", Name: "Nifty India Tourism", Short: "TOURISM"},
	{Symbol: "NSE:NIFTY RURAL", Name: "Nifty Rural", Short: "RURAL"},
	{Symbol: "NSE:NIFTY CAPITAL MARKETS", Name: "Nifty Capital Markets", Short: "CAPMKT"},
	{Symbol: "NSE:NIFTY CHEMICALS", Name: "Nifty Chemicals", Short: "CHEMICALS"},
	{Symbol: "NSE:NIFTY EV & NEW AGE AUTOMOTIVE", Name: "Nifty EV & New Age Auto", Short: "EVAUTO"},
	{Symbol: "NSE:NIFTY MOBILITY", Name: "Nifty Mobility", Short: "MOBILITY"},
}

// IndexGroup returns the indices of one scan group, benchmark excluded.
// The "all" group is the sectorial, broad-market and thematic lists
// concatenated.
func IndexGroup(group string) ([]models.Listing, bool) {
	switch group {
	case GroupSectorial:
		return sectorialIndices, true
	case GroupBroadMarket:
		return broadMarketIndices, true
	case GroupThematic:
		return thematicIndices, true
	case GroupAll:
		all := make([]models.Listing, 0, len(sectorialIndices)+len(broadMarketIndices)+len(thematicIndices))
		all = append(all, sectorialIndices...)
		all = append(all, broadMarketIndices...)
		all = append(all, thematicIndices...)
		return all, true
	}
	return nil, false
}

// IndexGroups returns every group key mapped to its index names, benchmark
// first. This backs the groups discovery endpoint.
func IndexGroups() map[string][]string {
	out := make(map[string][]string, 4)
	for _, group := range []string{GroupSectorial, GroupBroadMarket, GroupThematic, GroupAll} {
		listings, _ := IndexGroup(group)
		names := make([]string, 0, len(listings)+1)
		names = append(names, Benchmark.Name)
		for _, l := range listings {
			names = append(names, l.Name)
		}
		out[group] = names
	}
	return out
}

// Constituent stocks per sector index. Representative NSE constituents,
// keyed by the sector display name.
var sectorStocks = map[string][]string{
	"Bank Nifty": {
		"HDFCBANK.NS", "ICICIBANK.NS", "SBIN.NS", "KOTAKBANK.NS", "AXISBANK.NS",
		"INDUSINDBK.NS", "BANKBARODA.NS", "PNB.NS", "FEDERALBNK.NS", "IDFCFIRSTB.NS",
		"BANDHANBNK.NS", "AUBANK.NS",
	},
	"Nifty PSU Bank": {
		"SBIN.NS", "BANKBARODA.NS", "PNB.NS", "CANBK.NS", "UNIONBANK.NS",
		"IOB.NS", "INDIANB.NS", "CENTRALBK.NS", "BANKINDIA.NS", "MAHABANK.NS",
		"PSB.NS", "UCOBANK.NS",
	},
	"Nifty Pvt Bank": {
		"HDFCBANK.NS", "ICICIBANK.NS", "KOTAKBANK.NS", "AXISBANK.NS", "INDUSINDBK.NS",
		"FEDERALBNK.NS", "IDFCFIRSTB.NS", "BANDHANBNK.NS", "RBLBANK.NS", "YESBANK.NS",
	},
	"Nifty Finance": {
		"HDFCBANK.NS", "ICICIBANK.NS", "SBIN.NS", "KOTAKBANK.NS", "AXISBANK.NS",
		"BAJFINANCE.NS", "BAJAJFINSV.NS", "HDFCLIFE.NS", "SBILIFE.NS", "ICICIPRULI.NS",
		"ICICIGI.NS", "HDFCAMC.NS", "SBICARD.NS", "CHOLAFIN.NS", "MUTHOOTFIN.NS",
		"PFC.NS", "RECLTD.NS", "SHRIRAMFIN.NS", "LICHSGFIN.NS", "M&MFIN.NS",
	},
	"Nifty IT": {
		"TCS.NS", "INFY.NS", "HCLTECH.NS", "WIPRO.NS", "TECHM.NS",
		"LTIM.NS", "MPHASIS.NS", "COFORGE.NS", "PERSISTENT.NS", "LTTS.NS",
	},
	"Nifty Pharma": {
		"SUNPHARMA.NS", "DRREDDY.NS", "CIPLA.NS", "DIVISLAB.NS", "APOLLOHOSP.NS",
		"TORNTPHARM.NS", "ZYDUSLIFE.NS", "BIOCON.NS", "LUPIN.NS", "AUROPHARMA.NS",
		"ALKEM.NS", "GLAND.NS", "IPCALAB.NS", "LAURUSLABS.NS", "NATCOPHARM.NS",
	},
	"Nifty Healthcare": {
		"SUNPHARMA.NS", "DRREDDY.NS", "CIPLA.NS", "DIVISLAB.NS", "APOLLOHOSP.NS",
		"TORNTPHARM.NS", "ZYDUSLIFE.NS", "BIOCON.NS", "LUPIN.NS", "AUROPHARMA.NS",
		"MAXHEALTH.NS", "FORTIS.NS", "LALPATHLAB.NS", "METROPOLIS.NS", "SYNGENE.NS",
		"GLAND.NS", "ALKEM.NS", "MANKIND.NS", "GLENMARK.NS", "GRANULES.NS",
	},
	"Nifty FMCG": {
		"HINDUNILVR.NS", "ITC.NS", "NESTLEIND.NS", "BRITANNIA.NS", "DABUR.NS",
		"MARICO.NS", "COLPAL.NS", "GODREJCP.NS", "TATACONSUM.NS", "VBL.NS",
		"UBL.NS", "MCDOWELL-N.NS", "PGHH.NS", "EMAMILTD.NS",
	},
	"Nifty Consumer Durables": {
		"TITAN.NS", "HAVELLS.NS", "VOLTAS.NS", "BLUESTARCO.NS", "WHIRLPOOL.NS",
		"CROMPTON.NS", "AMBER.NS", "DIXON.NS", "VGUARD.NS", "RAJESHEXPO.NS",
		"KAJARIACER.NS", "CERA.NS", "BATAINDIA.NS", "RELAXO.NS", "ORIENTELEC.NS",
	},
	"Nifty India Consumption": {
		"TITAN.NS", "HINDUNILVR.NS", "ITC.NS", "MARUTI.NS", "NESTLEIND.NS",
		"BRITANNIA.NS", "DABUR.NS", "MARICO.NS", "GODREJCP.NS", "TATACONSUM.NS",
		"COLPAL.NS", "PAGEIND.NS", "TRENT.NS", "DMART.NS", "BATAINDIA.NS",
		"JUBLFOOD.NS", "MCDOWELL-N.NS", "VBL.NS", "INDIGO.NS", "DEVYANI.NS",
	},
	"Nifty Auto": {
		"MARUTI.NS", "TATAMOTORS.NS", "M&M.NS", "BAJAJ-AUTO.NS", "HEROMOTOCO.NS",
		"EICHERMOT.NS", "ASHOKLEY.NS", "TVSMOTOR.NS", "MOTHERSON.NS", "BHARATFORG.NS",
		"BALKRISIND.NS", "MRF.NS", "BOSCHLTD.NS", "EXIDEIND.NS",
	},
	"Nifty Metal": {
		"TATASTEEL.NS", "JSWSTEEL.NS", "HINDALCO.NS", "VEDL.NS", "JINDALSTEL.NS",
		"NMDC.NS", "SAIL.NS", "NATIONALUM.NS", "COALINDIA.NS", "APLAPOLLO.NS",
		"RATNAMANI.NS", "WELCORP.NS", "HINDZINC.NS", "MOIL.NS",
	},
	"Nifty Realty": {
		"DLF.NS", "GODREJPROP.NS", "OBEROIRLTY.NS", "PHOENIXLTD.NS", "PRESTIGE.NS",
		"BRIGADE.NS", "SOBHA.NS", "SUNTECK.NS", "LODHA.NS", "MAHLIFE.NS",
	},
	"Nifty Infra": {
		"LT.NS", "ADANIPORTS.NS", "ULTRACEMCO.NS", "GRASIM.NS", "SHREECEM.NS",
		"AMBUJACEM.NS", "ACC.NS", "DALBHARAT.NS", "RAMCOCEM.NS", "JKCEMENT.NS",
		"IRCON.NS", "NBCC.NS", "NCC.NS", "PEL.NS", "KEC.NS",
	},
	"Nifty Energy": {
		"RELIANCE.NS", "ONGC.NS", "NTPC.NS", "POWERGRID.NS", "BPCL.NS",
		"IOC.NS", "GAIL.NS", "ADANIGREEN.NS", "TATAPOWER.NS", "ADANIENSOL.NS",
		"PETRONET.NS", "HINDPETRO.NS", "OIL.NS", "MRPL.NS",
	},
	"Nifty Oil & Gas": {
		"RELIANCE.NS", "ONGC.NS", "BPCL.NS", "IOC.NS", "GAIL.NS",
		"HINDPETRO.NS", "OIL.NS", "PETRONET.NS", "MRPL.NS", "CHENNPETRO.NS",
		"CASTROLIND.NS", "GSPL.NS", "GUJGASLTD.NS", "MGL.NS", "IGL.NS",
	},
	"Nifty Media": {
		"ZEEL.NS", "PVRINOX.NS", "SUNTV.NS", "TV18BRDCST.NS", "NETWORK18.NS",
		"DISHTV.NS", "HATHWAY.NS", "NAZARA.NS", "SAREGAMA.NS", "TIPS.NS",
	},
	"Nifty India Defence": {
		"HAL.NS", "BEL.NS", "BHEL.NS", "BEML.NS", "BDL.NS",
		"COCHINSHIP.NS", "GRSE.NS", "MAZAGON.NS", "PARAS.NS", "DATAPATTNS.NS",
		"SOLARINDS.NS", "MIDHANI.NS", "ASTRAZEN.NS",
	},
	"Nifty India Digital": {
		"TCS.NS", "INFY.NS", "HCLTECH.NS", "WIPRO.NS", "TECHM.NS",
		"ZOMATO.NS", "NYKAA.NS", "PAYTM.NS", "POLICYBZR.NS", "DELHIVERY.NS",
		"CARTRADE.NS", "EASEMYTRIP.NS", "MAPMYINDIA.NS", "LATENTVIEW.NS",
	},
	"Nifty Chemicals": {
		"PIDILITIND.NS", "UPL.NS", "SRF.NS", "ATUL.NS", "DEEPAKNTR.NS",
		"NAVINFLUOR.NS", "FLUOROCHEM.NS", "CLEAN.NS", "AARTI.NS", "FINEORG.NS",
		"VINATIORGA.NS", "ALKYLAMINE.NS", "GALAXYSURF.NS", "TATACHEM.NS",
	},
	"Nifty Midcap 100": {
		"POLYCAB.NS", "TRENT.NS", "PERSISTENT.NS", "MPHASIS.NS", "COFORGE.NS",
		"VOLTAS.NS", "ASTRAL.NS", "BHARATFORG.NS", "CUMMINSIND.NS", "SYNGENE.NS",
		"PAGEIND.NS", "AFFLE.NS", "ESCORTS.NS", "CROMPTON.NS", "SUPREMEIND.NS",
		"FLUOROCHEM.NS", "KPITTECH.NS", "SONACOMS.NS", "HAPPSTMNDS.NS", "ANGELONE.NS",
	},
	"Nifty Smallcap 100": {
		"HAPPSTMNDS.NS", "ROUTE.NS", "LATENTVIEW.NS", "DATAPATTNS.NS", "CAMPUS.NS",
		"KAYNES.NS", "MEDPLUS.NS", "SAPPHIRE.NS", "FIVESTAR.NS",
		"HOMEFIRST.NS", "DREAMFOLKS.NS", "TARSONS.NS", "BIKAJI.NS", "EPIGRAL.NS",
	},
}

// Sectors returns the sector names with constituent coverage, sorted for
// stable discovery output.
func Sectors() []string {
	names := make([]string, 0, len(sectorStocks))
	for name := range sectorStocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SectorStocks returns the constituents of one sector as listings. The
// display name is the NSE ticker without the exchange suffix.
func SectorStocks(sector string) ([]models.Listing, bool) {
	symbols, ok := sectorStocks[sector]
	if !ok {
		return nil, false
	}
	listings := make([]models.Listing, 0, len(symbols))
	for _, s := range symbols {
		name := strings.TrimSuffix(s, ".NS")
		listings = append(listings, models.Listing{Symbol: s, Name: name, Short: name})
	}
	return listings, true
}
