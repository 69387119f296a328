package fgdc

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// emailStub accepts any address containing "@".
type emailStub struct{}

func (emailStub) Valid(address string) bool {
	return strings.Contains(address, "@")
}

const fullRecord = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <idinfo>
    <citation>
      <citeinfo>
        <origin>Smith</origin>
        <origin>Jones</origin>
        <pubdate>20200615</pubdate>
        <pubtime>1430</pubtime>
        <title>Report</title>
        <geoform>map</geoform>
        <pubinfo>
          <pubplace>Reston, VA</pubplace>
          <publish>U.S. Geological Survey</publish>
        </pubinfo>
        <onlink>http://example.com/data.zip</onlink>
        <lworkcit>
          <citeinfo>
            <title>Parent Collection</title>
            <onlink>https://www.sciencebase.gov/catalog/item/5a1b2c</onlink>
            <onlink>http://example.com/project</onlink>
          </citeinfo>
        </lworkcit>
      </citeinfo>
    </citation>
    <descript>
      <abstract>A short abstract.</abstract>
      <purpose>Testing.</purpose>
      <supplinf>{"gdaId": "1234"} This project is PRJ-9 in the USGS BASIS+ system.</supplinf>
    </descript>
    <timeperd>
      <timeinfo>
        <rngdates>
          <begdate>2019</begdate>
          <enddate>20201231</enddate>
          <endtime>235900</endtime>
        </rngdates>
      </timeinfo>
    </timeperd>
    <status><update>As needed</update></status>
    <spdom>
      <bounding>
        <westbc>10</westbc>
        <eastbc>-5</eastbc>
        <northbc>45</northbc>
        <southbc>40</southbc>
      </bounding>
    </spdom>
    <keywords>
      <theme>
        <themekt>ISO 19115 Topic Category</themekt>
        <themekey>geology</themekey>
      </theme>
      <place>
        <placekt>None</placekt>
        <placekey>Colorado</placekey>
      </place>
    </keywords>
    <ptcontac>
      <cntinfo>
        <cntorgp>
          <cntorg>Acme</cntorg>
          <cntper>Jane</cntper>
        </cntorgp>
        <cntpos>Geologist</cntpos>
        <cntaddr>
          <addrtype>mailing address</addrtype>
          <address>PO Box 1</address>
          <city>Denver</city>
          <state>CO</state>
          <postal>80225</postal>
          <country>USA</country>
        </cntaddr>
        <cntvoice>555-1234</cntvoice>
        <cntemail>jane@acme.org</cntemail>
      </cntinfo>
    </ptcontac>
    <browse>
      <browsen>http://example.com/preview.png</browsen>
      <browsed>Preview</browsed>
    </browse>
  </idinfo>
  <distinfo>
    <distrib>
      <cntinfo>
        <cntperp><cntper>Bob</cntper></cntperp>
        <cntemail>not-an-email</cntemail>
      </cntinfo>
    </distrib>
    <stdorder>
      <digform>
        <digtinfo>
          <formname>Shapefile</formname>
          <transize>1.5</transize>
        </digtinfo>
        <digtopt>
          <onlinopt>
            <computer>
              <networka>
                <networkr>http://example.com/shp.zip</networkr>
              </networka>
            </computer>
          </onlinopt>
        </digtopt>
      </digform>
    </stdorder>
  </distinfo>
  <metainfo>
    <metc>
      <cntinfo>
        <cntperp>
          <cntper>Meta</cntper>
          <cntorg>Meta Org</cntorg>
        </cntperp>
      </cntinfo>
    </metc>
  </metainfo>
</metadata>`

func normalise(t *testing.T, raw *domain.RawDocument) domain.ItemRecord {
	t.Helper()
	result, err := New(emailStub{}).Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, Format, result.Format)
	return result.Record
}

func rawXML(content string) *domain.RawDocument {
	return &domain.RawDocument{
		URI:      "record.xml",
		MIMEType: "application/xml",
		Content:  []byte(content),
	}
}

func TestNormaliser_Interface(t *testing.T) {
	n := New(nil)
	assert.Equal(t, []string{"application/xml", "text/xml"}, n.SupportedMIMETypes())
	assert.Equal(t, []string{"fgdc"}, n.SupportedFormats())
	assert.Equal(t, 90, n.Priority())
}

func TestNormalise_NilDocument(t *testing.T) {
	_, err := New(nil).Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_UnsupportedInput(t *testing.T) {
	raw := rawXML(fullRecord)
	raw.URI = "record.json"

	_, err := New(nil).Normalise(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrUnsupportedInput)
}

func TestNormalise_UnsupportedInputSkipsParsing(t *testing.T) {
	raw := rawXML("<not closed")
	raw.URI = "notes.txt"

	_, err := New(nil).Normalise(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrUnsupportedInput)
	assert.NotErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestNormalise_UppercaseExtension(t *testing.T) {
	raw := rawXML(fullRecord)
	raw.URI = "/data/RECORD.XML"

	record := normalise(t, raw)
	assert.Equal(t, "Report", record.Title)
}

func TestNormalise_MalformedDocument(t *testing.T) {
	_, err := New(nil).Normalise(context.Background(), rawXML("<metadata><idinfo></metadata>"))
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestNormalise_Scalars(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	assert.Equal(t, "Report", record.Title)
	assert.Equal(t, "A short abstract.", record.Body)
	assert.Equal(t, "A short abstract.", record.Summary)
	assert.Equal(t, "Testing.", record.Purpose)
	assert.Equal(t, "As needed", record.MaintenanceUpdateFrequency)
}

func TestNormalise_Identifiers(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	assert.Equal(t, []domain.Identifier{
		{Scheme: "gda", Type: "id", Key: "1234"},
		{Scheme: "BASIS+", Type: "", Key: "PRJ-9"},
	}, record.Identifiers)
}

func TestNormalise_Citation(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	assert.Equal(t,
		"Smith, and Jones, 20200615, 1430, Report: U.S. Geological Survey, "+
			"https://www.sciencebase.gov/catalog/item/5a1b2c, http://example.com/project, "+
			"http://example.com/data.zip.",
		record.Citation)
}

func TestNormalise_ParentFromLargerWork(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))
	assert.Equal(t, "5a1b2c", record.ParentID)
}

func TestNormalise_ParentOverride(t *testing.T) {
	raw := rawXML(fullRecord)
	override := "override-id"
	raw.ParentID = &override

	record := normalise(t, raw)
	assert.Equal(t, "override-id", record.ParentID)

	// The catalog link is still not folded into web links.
	for _, link := range record.WebLinks {
		assert.NotContains(t, link.URI, "catalog/item")
	}
}

func TestNormalise_LastCatalogLinkWins(t *testing.T) {
	xml := `<metadata><idinfo><citation><citeinfo><lworkcit><citeinfo>
		<onlink>https://www.sciencebase.gov/catalog/item/first</onlink>
		<onlink>https://www.sciencebase.gov/catalog/folder/second</onlink>
	</citeinfo></lworkcit></citeinfo></citation></idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	assert.Equal(t, "second", record.ParentID)
	assert.Empty(t, record.WebLinks)
}

func TestNormalise_WebLinks(t *testing.T) {
	raw := rawXML(fullRecord)
	raw.SourceURL = "https://example.com/source/record.xml"

	record := normalise(t, raw)
	require.Len(t, record.WebLinks, 5)

	source := record.WebLinks[0]
	assert.Equal(t, domain.LinkOriginalSource, source.Type)
	assert.Equal(t, "https://example.com/source/record.xml", source.URI)
	assert.Equal(t, domain.RelSelf, source.Rel)
	assert.Equal(t, "Original Source Metadata", source.Title)
	assert.Nil(t, source.Hidden)

	project := record.WebLinks[1]
	assert.Equal(t, domain.LinkOnline, project.Type)
	assert.Equal(t, "http://example.com/project", project.URI)
	assert.Equal(t, domain.RelRelated, project.Rel)

	online := record.WebLinks[2]
	assert.Equal(t, domain.LinkOnline, online.Type)
	assert.Equal(t, "http://example.com/data.zip", online.URI)

	browse := record.WebLinks[3]
	assert.Equal(t, domain.LinkBrowseImage, browse.Type)
	assert.Equal(t, "http://example.com/preview.png", browse.URI)
	assert.Equal(t, "Preview", browse.Title)

	network := record.WebLinks[4]
	assert.Equal(t, domain.LinkDownload, network.Type)
	assert.Equal(t, "Shapefile", network.Title)
	assert.Equal(t, int64(1572864), network.Length)
	require.NotNil(t, network.Hidden)
	assert.False(t, *network.Hidden)
}

func TestNormalise_WebLinksWithoutSourceURL(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))
	require.Len(t, record.WebLinks, 4)
	assert.Equal(t, domain.LinkOnline, record.WebLinks[0].Type)
}

func TestNormalise_TransferSize(t *testing.T) {
	tests := []struct {
		name     string
		transize string
		want     int64
	}{
		{"megabytes", "2", 2097152},
		{"fractional truncated", "0.0000001", 0},
		{"not a number", "large", 0},
		{"padded", " 1 ", 1048576},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xml := `<metadata><distinfo><stdorder><digform>
				<digtinfo><formname>ZIP</formname><transize>` + tt.transize + `</transize></digtinfo>
				<digtopt><onlinopt><computer><networka><networkr>http://example.com/a.zip</networkr></networka></computer></onlinopt></digtopt>
			</digform></stdorder></distinfo></metadata>`

			record := normalise(t, rawXML(xml))
			require.Len(t, record.WebLinks, 1)
			assert.Equal(t, tt.want, record.WebLinks[0].Length)
		})
	}
}

func TestNormalise_TransferSizePerDigitalForm(t *testing.T) {
	xml := `<metadata><distinfo><stdorder>
		<digform>
			<digtinfo><formname>First</formname><transize>1</transize></digtinfo>
			<digtopt><onlinopt><computer><networka><networkr>http://example.com/1.zip</networkr></networka></computer></onlinopt></digtopt>
		</digform>
		<digform>
			<digtinfo><formname>Second</formname><transize>3</transize></digtinfo>
			<digtopt><onlinopt><computer><networka><networkr>http://example.com/2.zip</networkr></networka></computer></onlinopt></digtopt>
		</digform>
	</stdorder></distinfo></metadata>`

	record := normalise(t, rawXML(xml))
	require.Len(t, record.WebLinks, 2)
	assert.Equal(t, "First", record.WebLinks[0].Title)
	assert.Equal(t, int64(1048576), record.WebLinks[0].Length)
	assert.Equal(t, "Second", record.WebLinks[1].Title)
	assert.Equal(t, int64(3145728), record.WebLinks[1].Length)
}

func TestNormalise_Tags(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	assert.Equal(t, []domain.Tag{
		{Type: "Theme", Scheme: "ISO 19115 Topic Category", Name: "geology"},
		{Type: "Theme", Scheme: "None", Name: "Colorado"},
	}, record.Tags)
}

func TestNormalise_TagsSkipLongAndEmpty(t *testing.T) {
	long := strings.Repeat("k", 81)
	edge := strings.Repeat("k", 80)
	xml := `<metadata><idinfo><keywords><theme>
		<themekey></themekey>
		<themekey>` + long + `</themekey>
		<themekey>` + edge + `</themekey>
	</theme></keywords></idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	require.Len(t, record.Tags, 1)
	assert.Equal(t, edge, record.Tags[0].Name)
	assert.Empty(t, record.Tags[0].Scheme)
}

func TestNormalise_Contacts(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))
	require.Len(t, record.Contacts, 8)

	acme := record.Contacts[0]
	assert.Equal(t, domain.RolePointOfContact, acme.Type)
	assert.Equal(t, domain.ContactOrganization, acme.ContactType)
	assert.Equal(t, "Acme", acme.Name)
	assert.Equal(t, "Jane", acme.OrganizationsPerson)
	assert.Equal(t, "Geologist", acme.JobTitle)
	assert.Equal(t, "jane@acme.org", acme.Email)
	require.NotNil(t, acme.PrimaryLocation)
	assert.Equal(t, "555-1234", acme.PrimaryLocation.OfficePhone)
	assert.Nil(t, acme.PrimaryLocation.StreetAddress)
	assert.Equal(t, &domain.Address{
		Line1:   "PO Box 1",
		City:    "Denver",
		State:   "CO",
		Zip:     "80225",
		Country: "USA",
	}, acme.PrimaryLocation.MailAddress)

	jane := record.Contacts[1]
	assert.Equal(t, domain.RolePointOfContact, jane.Type)
	assert.Equal(t, domain.ContactPerson, jane.ContactType)
	assert.Equal(t, "Jane", jane.Name)
	assert.Equal(t, &domain.Organization{DisplayText: "Acme"}, jane.Organization)
	assert.Empty(t, jane.OrganizationsPerson)
	assert.Equal(t, acme.PrimaryLocation, jane.PrimaryLocation)
	assert.Equal(t, "jane@acme.org", jane.Email)
	assert.Equal(t, "Geologist", jane.JobTitle)

	assert.Equal(t, domain.Contact{Name: "Smith", Type: domain.RoleOriginator}, record.Contacts[2])
	assert.Equal(t, domain.Contact{Name: "Jones", Type: domain.RoleOriginator}, record.Contacts[3])

	meta := record.Contacts[4]
	assert.Equal(t, domain.RoleMetadataContact, meta.Type)
	assert.Equal(t, domain.ContactPerson, meta.ContactType)
	assert.Equal(t, "Meta", meta.Name)

	metaOrg := record.Contacts[5]
	assert.Equal(t, domain.ContactOrganization, metaOrg.ContactType)
	assert.Equal(t, "Meta Org", metaOrg.Name)

	assert.Equal(t, domain.Contact{Name: "U.S. Geological Survey", Type: domain.RolePublisher}, record.Contacts[6])

	bob := record.Contacts[7]
	assert.Equal(t, domain.RoleDistributor, bob.Type)
	assert.Equal(t, "Bob", bob.Name)
	assert.Empty(t, bob.Email)
}

func TestNormalise_NilEmailValidatorDropsEmails(t *testing.T) {
	result, err := New(nil).Normalise(context.Background(), rawXML(fullRecord))
	require.NoError(t, err)

	for _, c := range result.Record.Contacts {
		assert.Empty(t, c.Email)
	}
}

func TestNormalise_AddressLines(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  domain.Address
	}{
		{"one line", "<address>1 Main St</address>", domain.Address{Line1: "1 Main St"}},
		{"two lines", "<address>1 Main St</address><address>Suite 2</address>", domain.Address{Line1: "1 Main St", Line2: "Suite 2"}},
		{"three lines", "<address>A</address><address>B</address><address>C</address>", domain.Address{Line1: "A\nB\nC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xml := `<metadata><distinfo><distrib><cntinfo>
				<cntorgp><cntorg>Org</cntorg></cntorgp>
				<cntaddr><addrtype>physical</addrtype>` + tt.lines + `</cntaddr>
			</cntinfo></distrib></distinfo></metadata>`

			record := normalise(t, rawXML(xml))
			require.Len(t, record.Contacts, 1)
			require.NotNil(t, record.Contacts[0].PrimaryLocation)
			assert.Equal(t, &tt.want, record.Contacts[0].PrimaryLocation.StreetAddress)
			assert.Nil(t, record.Contacts[0].PrimaryLocation.MailAddress)
		})
	}
}

func TestNormalise_PublisherLegacyLocations(t *testing.T) {
	xml := `<metadata><idinfo><citation><citeinfo><pubinfo>
		<publisher>Legacy Press</publisher>
		<publish>Modern Press</publish>
	</pubinfo></citeinfo></citation></idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	assert.Equal(t, []domain.Contact{
		{Name: "Legacy Press", Type: domain.RolePublisher},
		{Name: "Modern Press", Type: domain.RolePublisher},
	}, record.Contacts)
}

func TestNormalise_Dates(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	assert.Equal(t, []domain.DateEntry{
		{Type: domain.DateTypePublication, DateString: "2020-06-1514:30", Label: "Publication Date"},
		{Type: domain.DateTypeStart, DateString: "2019"},
		{Type: domain.DateTypeEnd, DateString: "2020-12-3123:59:00"},
	}, record.Dates)
}

func TestNormalise_TimePeriodVariants(t *testing.T) {
	xml := `<metadata><idinfo>
		<citation><citeinfo><pubdate>Unpublished Material</pubdate></citeinfo></citation>
		<timeperd>
			<timeinfo><sngdate><caldate>06152023</caldate><time>1200</time></sngdate></timeinfo>
			<timeinfo><mdattim>
				<sngdate><caldate>2021-03</caldate></sngdate>
				<sngdate><caldate>2022</caldate></sngdate>
			</mdattim></timeinfo>
		</timeperd>
	</idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	assert.Equal(t, []domain.DateEntry{
		{Type: domain.DateTypeInfo, DateString: "2023-06-1512:00", Label: "Time Period"},
		{Type: domain.DateTypeInfo, DateString: "2021-03", Label: "Time Period"},
		{Type: domain.DateTypeInfo, DateString: "2022", Label: "Time Period"},
	}, record.Dates)
}

func TestNormalise_UnknownPublicationTime(t *testing.T) {
	xml := `<metadata><idinfo><citation><citeinfo>
		<pubdate>2020</pubdate><pubtime>Unknown</pubtime>
	</citeinfo></citation></idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	assert.Equal(t, []domain.DateEntry{
		{Type: domain.DateTypePublication, DateString: "2020", Label: "Publication Date"},
	}, record.Dates)
}

func TestNormalise_Spatial(t *testing.T) {
	record := normalise(t, rawXML(fullRecord))

	require.NotNil(t, record.Spatial)
	assert.Equal(t, domain.BoundingBox{MinX: -5, MaxX: 10, MinY: 40, MaxY: 45}, record.Spatial.BoundingBox)
}

func TestNormalise_SpatialFallsBackPerBound(t *testing.T) {
	xml := `<metadata><idinfo>
		<spdom><bounding><westbc>-100</westbc><eastbc>-90</eastbc><northbc></northbc><southbc>30</southbc></bounding></spdom>
		<rseSpdom><bounding><westbc>0</westbc><eastbc>0</eastbc><northbc>35</northbc><southbc>0</southbc></bounding></rseSpdom>
	</idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	require.NotNil(t, record.Spatial)
	assert.Equal(t, domain.BoundingBox{MinX: -100, MaxX: -90, MinY: 30, MaxY: 35}, record.Spatial.BoundingBox)
}

func TestNormalise_SpatialMissingBound(t *testing.T) {
	xml := `<metadata><idinfo><spdom><bounding>
		<westbc>10</westbc><eastbc>-5</eastbc><southbc>40</southbc>
	</bounding></spdom></idinfo></metadata>`

	record := normalise(t, rawXML(xml))
	assert.Nil(t, record.Spatial)
}

func TestNormalise_SpatialNonFiniteBounds(t *testing.T) {
	tests := []struct {
		name  string
		north string
		want  *domain.Spatial
	}{
		{"nan", "NaN", nil},
		{"infinity", "+Inf", nil},
		{"negative infinity", "-Infinity", nil},
		{"nan falls back to rseSpdom", "NaN", &domain.Spatial{
			BoundingBox: domain.BoundingBox{MinX: -100, MaxX: -90, MinY: 30, MaxY: 35},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallback := ""
			if tt.want != nil {
				fallback = `<rseSpdom><bounding><northbc>35</northbc></bounding></rseSpdom>`
			}
			xml := `<metadata><idinfo>
				<spdom><bounding><westbc>-100</westbc><eastbc>-90</eastbc><northbc>` + tt.north + `</northbc><southbc>30</southbc></bounding></spdom>` +
				fallback + `</idinfo></metadata>`

			record := normalise(t, rawXML(xml))
			assert.Equal(t, tt.want, record.Spatial)

			_, err := json.Marshal(record)
			require.NoError(t, err)
		})
	}
}

func TestNormalise_Latin1Record(t *testing.T) {
	xml := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<metadata><idinfo><citation><citeinfo><title>R\xe9sum\xe9 des donn\xe9es</title></citeinfo></citation></idinfo></metadata>"

	record := normalise(t, rawXML(xml))
	assert.Equal(t, "Résumé des données", record.Title)
}

func TestNormalise_SummaryTruncation(t *testing.T) {
	abstract := strings.Repeat("a", 700) + " " + strings.Repeat("b", 99)
	require.Len(t, abstract, 800)

	record := normalise(t, rawXML(`<metadata><idinfo><descript><abstract>`+abstract+`</abstract></descript></idinfo></metadata>`))
	assert.Equal(t, abstract, record.Body)
	assert.Equal(t, strings.Repeat("a", 700)+" [...]", record.Summary)
}

func TestNormalise_SummaryShortAbstract(t *testing.T) {
	abstract := strings.Repeat("a", 700)

	record := normalise(t, rawXML(`<metadata><idinfo><descript><abstract>`+abstract+`</abstract></descript></idinfo></metadata>`))
	assert.Equal(t, abstract, record.Summary)
}

func TestNormalise_EmptyDocumentIsSparse(t *testing.T) {
	record := normalise(t, rawXML(`<metadata/>`))
	assert.True(t, record.IsEmpty())

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestNormalise_Idempotent(t *testing.T) {
	first, err := json.Marshal(normalise(t, rawXML(fullRecord)))
	require.NoError(t, err)
	second, err := json.Marshal(normalise(t, rawXML(fullRecord)))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestNormalise_Concurrent(t *testing.T) {
	n := New(emailStub{})
	want, err := n.Normalise(context.Background(), rawXML(fullRecord))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.ItemRecord, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := n.Normalise(context.Background(), rawXML(fullRecord))
			if err == nil {
				results[i] = result.Record
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Record, got)
	}
}
