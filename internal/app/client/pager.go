package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
)

var (
	// ErrStaleResponse - yanıt gelene kadar daha yeni bir sayfa istendi
	ErrStaleResponse = errors.New("geç kalan yanıt yok sayıldı")
	// ErrNoSuchPage - istenen sayfa numarası sunucu üst verisine göre yok
	ErrNoSuchPage = errors.New("böyle bir sayfa yok")
	// ErrNoPageLoaded - henüz hiç sayfa yüklenmedi
	ErrNoPageLoaded = errors.New("önce bir sayfa yüklenmeli")
)

// memberFetcher, pager'ın ihtiyacı olan tek uç: sayfa getirme.
type memberFetcher interface {
	FetchMemberPage(ctx context.Context, pageIndex, pageSize int) (ListResult, error)
}

// MemberPager, sunucu güdümlü üye listesini sürer. Süzme ve sıralama
// yalnızca indirilmiş sayfaya uygulanır; sunucuya yeni sorgu atılmaz, bu
// yüzden süzgeç sayıları sayfa yereldir (kaynak davranışı bilinçli olarak
// korunmuştur). Örtüşen istekler nesil sayacıyla ayıklanır: yalnızca en son
// başlatılan isteğin yanıtı görünür duruma yazılır, geç kalan yanıtlar
// ekranda daha yeni bir sayfanın üzerine binemez.
type MemberPager struct {
	fetcher  memberFetcher
	log      *slog.Logger
	pageSize int

	mu         sync.Mutex
	generation uint64
	current    ListResult
	loaded     bool
}

func NewMemberPager(fetcher memberFetcher, pageSize int, log *slog.Logger) *MemberPager {
	return &MemberPager{
		fetcher:  fetcher,
		log:      log.With(slog.String("component", "member_pager")),
		pageSize: pageSize,
	}
}

// Load, verilen sayfayı getirir ve görünür durum yapar. Yanıt beklerken
// daha yeni bir Load başlatılmışsa sonuç atılır ve ErrStaleResponse döner.
func (p *MemberPager) Load(ctx context.Context, page int) (ListResult, error) {
	if page < 1 {
		return ListResult{}, fmt.Errorf("%w: %d", ErrNoSuchPage, page)
	}

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	res, err := p.fetcher.FetchMemberPage(ctx, page, p.pageSize)
	if err != nil {
		return ListResult{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		p.log.Debug("geç kalan sayfa yanıtı atıldı", "page", page)
		return ListResult{}, ErrStaleResponse
	}
	p.current = res
	p.loaded = true
	return res, nil
}

// Current, son başarıyla yüklenen sayfayı döndürür.
func (p *MemberPager) Current() (ListResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return ListResult{}, ErrNoPageLoaded
	}
	return p.current, nil
}

func (p *MemberPager) First(ctx context.Context) (ListResult, error) {
	return p.Load(ctx, 1)
}

func (p *MemberPager) Last(ctx context.Context) (ListResult, error) {
	cur, err := p.Current()
	if err != nil {
		return ListResult{}, err
	}
	return p.Load(ctx, cur.Pages)
}

func (p *MemberPager) Next(ctx context.Context) (ListResult, error) {
	cur, err := p.Current()
	if err != nil {
		return ListResult{}, err
	}
	if cur.PageIndex >= cur.Pages {
		return ListResult{}, fmt.Errorf("%w: %d", ErrNoSuchPage, cur.PageIndex+1)
	}
	return p.Load(ctx, cur.PageIndex+1)
}

func (p *MemberPager) Prev(ctx context.Context) (ListResult, error) {
	cur, err := p.Current()
	if err != nil {
		return ListResult{}, err
	}
	if cur.PageIndex <= 1 {
		return ListResult{}, fmt.Errorf("%w: %d", ErrNoSuchPage, cur.PageIndex-1)
	}
	return p.Load(ctx, cur.PageIndex-1)
}

// Jump, doğrudan sayfa numarasına gider; numara son bilinen [1, Pages]
// aralığının dışındaysa istek hiç atılmadan reddedilir.
func (p *MemberPager) Jump(ctx context.Context, page int) (ListResult, error) {
	cur, err := p.Current()
	if err != nil {
		return ListResult{}, err
	}
	if page < 1 || page > cur.Pages {
		return ListResult{}, fmt.Errorf("%w: %d (toplam %d)", ErrNoSuchPage, page, cur.Pages)
	}
	return p.Load(ctx, page)
}

// View, indirilmiş sayfaya süzgeç ve sıralama uygular. Sonuç yalnızca bu
// sayfanın satırlarını kapsar; tüm kümede arama yapmaz.
func (p *MemberPager) View(nameQuery, phoneQuery string, key member.SortKey) ([]member.Member, error) {
	cur, err := p.Current()
	if err != nil {
		return nil, err
	}
	return member.Sort(member.Filter(cur.Members, nameQuery, phoneQuery), key), nil
}
