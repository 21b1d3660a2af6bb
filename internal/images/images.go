package images

import (
	"math/rand"
	"strings"

	"car-auction/internal/cache"
)

// Stock image URLs per make. Lookups are case-insensitive and fall back to
// partial matches, then to the generic pool.
var brandImages = map[string][]string{
	"toyota": {
		"https://images.unsplash.com/photo-1559416523-140ddc3d238c?q=80&w=1000",
		"https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?q=80&w=1000",
	},
	"honda": {
		"https://images.unsplash.com/photo-1605816988069-b11383b50717?q=80&w=1000",
	},
	"ford": {
		"https://images.unsplash.com/photo-1551830820-330a71b99659?q=80&w=1000",
		"https://images.unsplash.com/photo-1612544448445-b8232cff3b6c?q=80&w=1000",
		"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?q=80&w=1000",
	},
	"chevrolet": {
		"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?q=80&w=1000",
	},
	"bmw": {
		"https://images.unsplash.com/photo-1555215695-3004980ad54e?q=80&w=1000",
		"https://images.unsplash.com/photo-1556189250-72ba954cfc2b?q=80&w=1000",
	},
	"mercedes": {
		"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?q=80&w=1000",
		"https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?q=80&w=1000",
		"https://images.unsplash.com/photo-1501066927591-314112b5888e?q=80&w=1000",
	},
	"audi": {
		"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?q=80&w=1000",
		"https://images.unsplash.com/photo-1542282088-72c9c27ed0cd?q=80&w=1000",
		"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?q=80&w=1000",
	},
	"volkswagen": {
		"https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?q=80&w=1000",
	},
	"nissan": {
		"https://images.unsplash.com/photo-1609521263047-f8f205293f24?q=80&w=1000",
	},
	"hyundai": {
		"https://images.unsplash.com/photo-1629293363663-5ba15a591e4d?q=80&w=1000",
	},
	"kia": {
		"https://images.unsplash.com/photo-1641391503184-a2131018701b?q=80&w=1000",
	},
	"mazda": {
		"https://images.unsplash.com/photo-1586464836139-86553c751f65?q=80&w=1000",
	},
	"lexus": {
		"https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?q=80&w=1000",
	},
	"porsche": {
		"https://images.unsplash.com/photo-1503376780353-7e6692767b70?q=80&w=1000",
		"https://images.unsplash.com/photo-1614162692292-7ac56d7f7f1e?q=80&w=1000",
	},
	"ferrari": {
		"https://images.unsplash.com/photo-1592198084033-aade902d1aae?q=80&w=1000",
		"https://images.unsplash.com/photo-1583121274602-3e2820c69888?q=80&w=1000",
	},
	"lamborghini": {
		"https://images.unsplash.com/photo-1511919884226-fd3cad34687c?q=80&w=1000",
	},
	"maserati": {
		"https://images.unsplash.com/photo-1617814076367-b759c7d7e738?q=80&w=1000",
	},
	"volvo": {
		"https://images.unsplash.com/photo-1626668893632-6f3a4466d22f?q=80&w=1000",
	},
}

var defaultImages = []string{
	"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?q=80&w=1000",
	"https://images.unsplash.com/photo-1583121274602-3e2820c69888?q=80&w=1000",
	"https://images.unsplash.com/photo-1503376780353-7e6692767b70?q=80&w=1000",
	"https://images.unsplash.com/photo-1542362567-b07e54358753?q=80&w=1000",
	"https://images.unsplash.com/photo-1511919884226-fd3cad34687c?q=80&w=1000",
}

const cacheKeyPrefix = "car-image:"

// Picker resolves display images for cars. A resolved image is memoized in
// the injected cache so a car keeps the same image across requests.
type Picker struct {
	cache cache.Cache
}

// NewPicker creates a new image picker instance
func NewPicker(c cache.Cache) *Picker {
	return &Picker{cache: c}
}

// ImageForCar returns a stable image URL for a car, picking one for the make
// on first use.
func (p *Picker) ImageForCar(carID, carMake string) string {
	key := cacheKeyPrefix + carID
	if url, ok := p.cache.Get(key); ok {
		return url
	}
	url := RandomImageForMake(carMake)
	p.cache.Set(key, url)
	return url
}

// RandomImageForMake returns a random stock image for a make, falling back
// to partial matches and then the generic pool.
func RandomImageForMake(carMake string) string {
	needle := strings.ToLower(carMake)

	options := defaultImages
	if urls, ok := brandImages[needle]; ok {
		options = urls
	} else if needle != "" {
		for brand, urls := range brandImages {
			if strings.Contains(needle, brand) || strings.Contains(brand, needle) {
				options = urls
				break
			}
		}
	}

	return options[rand.Intn(len(options))]
}

// RandomDefaultImage returns a random generic car image
func RandomDefaultImage() string {
	return defaultImages[rand.Intn(len(defaultImages))]
}
