// README: Static coordinate tables for airports and known hotel drop-offs.
package location

import "wayfare/internal/types"

// airportCoordinates is the pickup-side table. Lookups are exact string
// matches; there is no fuzzy matching and no geocoding on the pickup path.
var airportCoordinates = map[string]types.Point{
	"Hyderabad Airport (HYD)":              {Lat: 17.2366, Lng: 78.4294},
	"Indira Gandhi International":          {Lat: 28.5665, Lng: 77.1031},
	"Los Angeles International":            {Lat: 33.9416, Lng: -118.4009},
	"Harry Reid International":             {Lat: 36.0840, Lng: -115.1537},
	"Logan International":                  {Lat: 42.3656, Lng: -71.0096},
	"San Francisco International":          {Lat: 37.6213, Lng: -122.3790},
	"John F. Kennedy International":        {Lat: 40.6413, Lng: -73.7781},
	"LaGuardia":                            {Lat: 40.7769, Lng: -73.8740},
	"New York (NYC)":                       {Lat: 40.7128, Lng: -74.0060},
	"Anaa":                                 {Lat: -17.35, Lng: -145.416667},
	"Arrabury":                             {Lat: -26.75, Lng: 141.05},
	"El Arish International Airport":       {Lat: 31.0633, Lng: 33.8344},
	"Les Salines":                          {Lat: 16.4833, Lng: -61.4333},
	"Apalachicola Regional":                {Lat: 29.7397, Lng: -85.0274},
	"Arapoti":                              {Lat: -24.166667, Lng: -49.816667},
	"Aachen/Merzbruck":                     {Lat: 50.816667, Lng: 6.133333},
	"Arraias":                              {Lat: -12.916667, Lng: -46.9},
	"Aranuka":                              {Lat: 0.166667, Lng: 173.6},
	"Aalborg":                              {Lat: 57.092778, Lng: 9.85},
	"Mala Mala":                            {Lat: -24.033333, Lng: 31.55},
	"Al Ain":                               {Lat: 24.26, Lng: 55.609167},
	"Anapa":                                {Lat: 45.0, Lng: 37.333333},
	"Aarhus Airport":                       {Lat: 56.307222, Lng: 10.613333},
	"Altay":                                {Lat: 47.9625, Lng: 88.086111},
	"Araxa":                                {Lat: -19.608333, Lng: -47.016667},
	"Al Ghaydah":                           {Lat: 16.208333, Lng: 52.179722},
	"Quetzaltenango":                       {Lat: 14.86, Lng: -91.503889},
	"Abakan":                               {Lat: 53.75, Lng: 91.4},
	"Asaba International":                  {Lat: 6.223889, Lng: 6.643333},
	"Los Llanos":                           {Lat: 38.946667, Lng: -1.860278},
	"Abadan":                               {Lat: 30.366667, Lng: 48.266667},
	"Lehigh Valley International":          {Lat: 40.6521, Lng: -75.4408},
	"Alpha":                                {Lat: -23.633333, Lng: 146.633333},
	"Municipal (ABI)":                      {Lat: 32.416667, Lng: -100.466667},
	"Felix Houphouet Boigny":               {Lat: 5.261389, Lng: -3.926111},
	"Kabri Dar":                            {Lat: 7.083333, Lng: 45.0},
	"Ambler":                               {Lat: 67.106667, Lng: -157.85},
	"Bamaga Injinoo":                       {Lat: -10.875, Lng: 142.366667},
	"Aboisso":                              {Lat: 5.433333, Lng: -3.333333},
	"Albuquerque International":            {Lat: 35.040278, Lng: -106.609167},
	"Municipal (ABR)":                      {Lat: 45.45, Lng: -98.42},
	"Abu Simbel":                           {Lat: 22.375, Lng: 31.625},
	"Al-Aqiq":                              {Lat: 20.627222, Lng: 41.6375},
	"Atambua":                              {Lat: -8.083333, Lng: 124.9},
	"Nnamdi Azikiwe International Airport": {Lat: 9.006944, Lng: 7.263056},
	"Albury":                               {Lat: -36.066667, Lng: 146.95},
	"Dougherty County":                     {Lat: 31.533333, Lng: -84.183333},
	"Dyce":                                 {Lat: 57.2, Lng: -2.2},
	"General Juan N. Alvarez International": {Lat: 16.76, Lng: -99.932778},
	"Antrim County":                        {Lat: 44.97, Lng: -85.16},
	"Kotoka":                               {Lat: 5.605278, Lng: -0.166667},
	"Acandi":                               {Lat: 8.016667, Lng: -76.966667},
	"Lanzarote":                            {Lat: 28.95, Lng: -13.625},
	"Altenrhein":                           {Lat: 47.483333, Lng: 9.55},
	"The Blaye":                            {Lat: 45.15, Lng: -0.666667},
	"Anuradhapura":                         {Lat: 8.32, Lng: 80.4},
	"Nantucket Memorial":                   {Lat: 41.2536, Lng: -70.0601},
	"Ciudad Acuña International Airport":   {Lat: 29.35, Lng: -100.933333},
	"Sahand":                               {Lat: 37.383333, Lng: 46.066667},
	"Araracuara":                           {Lat: -0.633333, Lng: -72.4},
	"Achinsk":                              {Lat: 56.283333, Lng: 90.5},
	"Municipal (ACT)":                      {Lat: 31.5936, Lng: -97.2301},
	"Arcata":                               {Lat: 40.9786, Lng: -124.1086},
	"Atlantic City International":          {Lat: 39.4511, Lng: -74.5772},
	"Zabol Airport":                        {Lat: 31.066667, Lng: 61.533333},
	"Adana":                                {Lat: 37.0, Lng: 35.3},
	"Adnan Menderes Airport":               {Lat: 38.3, Lng: 27.15},
	"Bole International":                   {Lat: 9.0, Lng: 38.8},
	"Aden International Airport":           {Lat: 12.8, Lng: 45.02},
	"Adiyaman":                             {Lat: 37.733333, Lng: 38.2},
	"Lenawee County":                       {Lat: 41.92, Lng: -84.07},
	"Aldan":                                {Lat: 58.6, Lng: 125.4},
	"Arandis":                              {Lat: -22.45, Lng: 14.966667},
	"Marka International Airport":          {Lat: 31.97, Lng: 35.98},
	"Adak Island Ns":                       {Lat: 51.8781, Lng: -176.6457},
	"Adelaide International Airport":       {Lat: -34.933333, Lng: 138.533333},
	"Ardmore Municipal Airport":            {Lat: 34.333333, Lng: -97.166667},
	"Andamooka":                            {Lat: -30.083333, Lng: 137.9},
	"Kodiak Airport":                       {Lat: 57.75, Lng: -152.483333},
	"Andrews":                              {Lat: 32.366667, Lng: -102.533333},
	"Addison Airport":                      {Lat: 32.966667, Lng: -96.833333},
	"Ada Municipal":                        {Lat: 34.783333, Lng: -96.683333},
	"Ardabil":                              {Lat: 38.333333, Lng: 48.333333},
	"Leuchars":                             {Lat: 56.383333, Lng: -2.866667},
	"Alldays":                              {Lat: -22.7, Lng: 29.5},
	"San Andres Island":                    {Lat: 12.583333, Lng: -81.7},
	"Abemama Atoll":                        {Lat: 0.483333, Lng: 173.866667},
	"Aek Godang":                           {Lat: 1.583333, Lng: 99.4},
	"Abéché":                               {Lat: 13.816667, Lng: 20.833333},
	"Albert Lea":                           {Lat: 43.683333, Lng: -93.383333},
	"Aioun El Atrouss":                     {Lat: 16.7, Lng: -9.633333},
	"Aeroparque Jorge Newbery":             {Lat: -34.55, Lng: -58.416667},
	"Sochi/Adler International Airport":    {Lat: 43.433333, Lng: 39.95},
	"Vigra":                                {Lat: 62.566667, Lng: 6.1},
	"Allakaket":                            {Lat: 66.55, Lng: -152.65},
	"Abu Musa":                             {Lat: 25.875, Lng: 55.0},
	"Alexandria International":             {Lat: 31.3275, Lng: -92.2961},
	"Akureyri":                             {Lat: 65.666667, Lng: -18.1},
	"San Rafael":                           {Lat: -34.6, Lng: -68.3},
	"Port Alfred":                          {Lat: -33.583333, Lng: 26.883333},
	"USAF Academy Airstrip":                {Lat: 39.0, Lng: -104.85},
	"Amalfi":                               {Lat: -6.216667, Lng: -79.8},
	"Alta Floresta":                        {Lat: -10.283333, Lng: -56.1},
	"Municipal (AFN)":                      {Lat: 40.733333, Lng: -74.083333},
	"Municipal (AFO)":                      {Lat: 44.533333, Lng: -108.533333},
	"Zarafshan":                            {Lat: 41.566667, Lng: 64.216667},
	"Afutara Aerodrome":                    {Lat: -8.6, Lng: 160.05},
	"Fort Worth Alliance":                  {Lat: 32.966667, Lng: -97.35},
	"Afyon":                                {Lat: 38.75, Lng: 30.55},
}

// usCityAirports get synthetic contiguous-US coordinates at registry build time
// so the hotel catalog's cities all have a pickup anchor.
var usCityAirports = []string{
	"Houston Airport", "Phoenix Airport", "Philadelphia Airport", "San Antonio Airport", "San Diego Airport",
	"Dallas Airport", "San Jose Airport", "Austin Airport", "Jacksonville Airport", "Fort Worth Airport",
	"Columbus Airport", "Charlotte Airport", "Indianapolis Airport", "Seattle Airport", "Denver Airport",
	"Washington D.C. Airport", "Boston Airport", "El Paso Airport", "Nashville Airport", "Detroit Airport",
	"Oklahoma City Airport", "Portland Airport", "Memphis Airport", "Louisville Airport", "Baltimore Airport",
	"Milwaukee Airport", "Albuquerque Airport", "Tucson Airport", "Fresno Airport", "Sacramento Airport",
	"Kansas City Airport", "Mesa Gateway Airport", "Atlanta Airport", "Omaha Airport", "Colorado Springs Airport",
	"Raleigh-Durham Airport", "Miami International Airport", "Virginia Beach Airport", "Long Beach Airport", "Oakland Airport",
	"Minneapolis-Saint Paul Airport", "Tulsa Airport", "Wichita Dwight D. Eisenhower Airport", "New Orleans Airport", "Arlington Municipal Airport",
}

// hotelCoordinates is the known drop-off table. Generated catalog hotels are
// registered on top of these at startup.
var hotelCoordinates = map[string]types.Point{
	"Taj Falaknuma Palace, Engine Bowli, Falaknuma, Hyderabad, Telangana 500053":                    {Lat: 17.3204, Lng: 78.4735},
	"ITC Kohenur, Hitec City, Hyderabad, Telangana 500081":                                          {Lat: 17.4475, Lng: 78.3900},
	"The Leela Palace, Africa Ave, Diplomatic Enclave, Chanakyapuri, New Delhi, Delhi 110023":       {Lat: 28.5988, Lng: 77.2104},
	"The Oberoi, Nariman Point, Mumbai, Maharashtra 400021":                                         {Lat: 18.9213, Lng: 72.8228},
	"Four Seasons Hotel, Doheny Dr, Los Angeles, CA 90048":                                          {Lat: 34.0768, Lng: -118.3846},
	"The Venetian Resort, Las Vegas Blvd S, Las Vegas, NV 89109":                                    {Lat: 36.1210, Lng: -115.1704},
	"The Ritz-Carlton, Avery St, Boston, MA 02111":                                                  {Lat: 42.3547, Lng: -71.0634},
	"Hilton San Francisco Union Square, O'Farrell St, San Francisco, CA 94102":                      {Lat: 37.7865, Lng: -122.4101},
	"The Plaza Hotel, Fifth Ave, New York, NY 10019":                                                {Lat: 40.7646, Lng: -73.9749},
	"Hyatt Regency Orlando International Airport, Jeff Fuqua Blvd, Orlando, FL 32827":               {Lat: 28.4316, Lng: -81.2858},
	"Hotel Near Apalachicola Regional, Bay Ave, Apalachicola, FL 32320":                             {Lat: 29.7200, Lng: -85.0100},
	"Comfort Inn & Suites, Airport Rd, Lehigh Valley, PA 18031":                                     {Lat: 40.6380, Lng: -75.4710},
	"Best Western Plus, N 1st St, Abilene, TX 79603":                                                {Lat: 32.4400, Lng: -100.4500},
	"The Grand Hotel, S Carolina Ave, Atlantic City, NJ 08401":                                      {Lat: 39.3620, Lng: -74.4390},
	"Radisson Blu Plaza Delhi Airport, NH8, New Delhi, Delhi 110037":                                {Lat: 28.5552, Lng: 77.1203},
	"Novotel Hyderabad Airport, Airport Rd, Shamshabad, Hyderabad, Telangana 500108":                {Lat: 17.2435, Lng: 78.4325},
}
